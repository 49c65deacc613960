package list

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

// Uniq removes duplicates, keeping the first occurrence of each value.
func Uniq[T comparable](xs []T) []T {
	return lo.Uniq(xs)
}

// UniqDeep is Uniq for element types that are not comparable with ==, such
// as slices and maps. Elements are equal when reflect.DeepEqual says so, so
// pointers are followed rather than compared by address. Candidates are
// bucketed by an xxhash digest of their contents and DeepEqual only runs
// within a bucket.
func UniqDeep[T any](xs []T) []T {
	out := make([]T, 0, len(xs))
	buckets := make(map[uint64][]int)
	for _, x := range xs {
		h := deepHash(reflect.ValueOf(x), maxHashDepth)
		dup := false
		for _, idx := range buckets[h] {
			if reflect.DeepEqual(out[idx], x) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[h] = append(buckets[h], len(out))
		out = append(out, x)
	}
	return out
}

// maxHashDepth bounds how far deepHash descends. Deeper levels, including
// cycles, contribute nothing, which only widens a bucket.
const maxHashDepth = 16

// deepHash digests v so that values reflect.DeepEqual considers equal hash
// equally. It never looks at addresses of pointed-to data.
func deepHash(v reflect.Value, depth int) uint64 {
	d := xxhash.New()
	writeValue(d, v, depth)
	return d.Sum64()
}

func writeUint(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = d.Write(buf[:])
}

func writeFloat(d *xxhash.Digest, f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	writeUint(d, math.Float64bits(f))
}

func writeValue(d *xxhash.Digest, v reflect.Value, depth int) {
	if !v.IsValid() {
		writeUint(d, 0)
		return
	}
	writeUint(d, uint64(v.Kind()))
	if depth == 0 {
		return
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(d, 1)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(d, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(d, real(c))
		writeFloat(d, imag(c))
	case reflect.String:
		_, _ = d.WriteString(v.String())
	case reflect.Array, reflect.Slice:
		writeUint(d, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			writeValue(d, v.Index(i), depth-1)
		}
	case reflect.Map:
		// Entries are combined with addition so iteration order is irrelevant.
		writeUint(d, uint64(v.Len()))
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := xxhash.New()
			writeValue(entry, iter.Key(), depth-1)
			writeValue(entry, iter.Value(), depth-1)
			sum += entry.Sum64()
		}
		writeUint(d, sum)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		writeValue(d, v.Elem(), depth-1)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			writeValue(d, v.Field(i), depth-1)
		}
	case reflect.Func:
		if v.IsNil() {
			writeUint(d, 0)
		}
	default:
		// Chan and UnsafePointer: DeepEqual compares these by identity.
		writeUint(d, uint64(v.Pointer()))
	}
}
