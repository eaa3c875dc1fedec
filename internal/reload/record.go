// Package reload swaps the editor's code while the process keeps running.
//
// All mutable editor state lives in one record whose first field is a
// Header holding the record's byte size. Across a reload the old code hands
// the record out untouched and the new code adopts it with Adopt, which
// grows it when the new layout appended fields. Fields are only ever
// appended; reordering or removing one corrupts the migrated state.
package reload

import (
	"errors"
	"reflect"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
)

// ErrShrink is returned by Adopt when the stored record is larger than the
// layout adopting it. The record is still returned unchanged.
var ErrShrink = errors.New("reload: state record is larger than the current layout")

// Header must be the first field of every migratable record.
type Header struct {
	Size uint64
}

// RecordSize returns the stored size of the record at p.
func RecordSize(p unsafe.Pointer) uint64 {
	return (*Header)(p).Size
}

// Stamp records the current layout size in a freshly allocated record.
func Stamp[T any](rec *T) {
	checkLayout[T]()
	(*Header)(unsafe.Pointer(rec)).Size = uint64(unsafe.Sizeof(*rec))
}

// New allocates a zeroed, stamped record.
func New[T any]() *T {
	rec := new(T)
	Stamp(rec)
	return rec
}

// Adopt takes ownership of a record handed over by the previous code.
//
// If the stored size is smaller than T, a new T is allocated, the fields
// the stored record already holds are copied over, the appended fields stay
// zero and the size is updated. An equal size reuses the record in place. A larger stored size
// also reuses it in place and reports ErrShrink.
func Adopt[T any](p unsafe.Pointer) (*T, error) {
	checkLayout[T]()
	if p == nil {
		return New[T](), nil
	}

	want := uint64(unsafe.Sizeof(*new(T)))
	stored := RecordSize(p)
	log := logger.Named("reload")

	switch {
	case stored == want:
		return (*T)(p), nil
	case stored > want:
		log.Warn("state record shrank; using it unchanged",
			zap.Uint64("stored", stored), zap.Uint64("layout", want))
		return (*T)(p), ErrShrink
	}

	log.Info("migrating state record",
		zap.Uint64("from", stored), zap.Uint64("to", want))

	rec := new(T)
	copyPrefix(reflect.ValueOf(rec).Elem(), p, stored)
	(*Header)(unsafe.Pointer(rec)).Size = want
	return rec, nil
}

// copyPrefix copies every field of dst that lies entirely within the first
// n bytes of the record at src. Fields go through reflect so pointer
// fields are written with the usual write barriers.
func copyPrefix(dst reflect.Value, src unsafe.Pointer, n uint64) {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if uint64(f.Offset+f.Type.Size()) > n {
			break
		}
		from := reflect.NewAt(f.Type, unsafe.Add(src, f.Offset)).Elem()
		to := reflect.NewAt(f.Type, unsafe.Pointer(dst.Field(i).UnsafeAddr())).Elem()
		to.Set(from)
	}
	runtime.KeepAlive(src)
}

// checkLayout panics when T does not start with a Header.
func checkLayout[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct || t.NumField() == 0 ||
		t.Field(0).Type != reflect.TypeOf((*Header)(nil)).Elem() || t.Field(0).Offset != 0 {
		panic("reload: " + t.String() + " must start with a reload.Header field")
	}
}
