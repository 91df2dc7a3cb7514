/*
This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or
distribute this software, either in source code form or as a compiled
binary, for any purpose, commercial or non-commercial, and by any
means.

In jurisdictions that recognize copyright laws, the author or authors
of this software dedicate any and all copyright interest in the
software to the public domain. We make this dedication for the benefit
of the public at large and to the detriment of our heirs and
successors. We intend this dedication to be an overt act of
relinquishment in perpetuity of all present and future rights to this
software under copyright law.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
OTHER DEALINGS IN THE SOFTWARE.

For more information, please refer to <http://unlicense.org/>
*/

package store

import "github.com/syndtr/goleveldb/leveldb"
import "github.com/paulmach/orb"
import "encoding/binary"
import "math"

/* Node locations are two float64s; 16 bytes, fixed. */

func EncodePoint(p orb.Point) []byte {
	var v [16]byte
	binary.BigEndian.PutUint64(v[:8],math.Float64bits(p[0]))
	binary.BigEndian.PutUint64(v[8:],math.Float64bits(p[1]))
	return v[:]
}
func DecodePoint(b []byte) (p orb.Point,ok bool) {
	if len(b)<16 { return }
	p[0] = math.Float64frombits(binary.BigEndian.Uint64(b[:8]))
	p[1] = math.Float64frombits(binary.BigEndian.Uint64(b[8:16]))
	ok = true
	return
}

/* Locations is a disk-backed node-id -> coordinate store. Writes are
   batched; reads flush the pending batch first. */
type Locations struct{
	DB *leveldb.DB
	batch leveldb.Batch
	count int
	buf [8]byte
}

var ErrNotFound = leveldb.ErrNotFound

func Open(path string) (*Locations,error) {
	db,err := leveldb.OpenFile(path,nil)
	if err!=nil {
		db,err = leveldb.RecoverFile(path,nil)
	}
	if err!=nil { return nil,err }
	return &Locations{DB:db},nil
}

func (s *Locations) Put(id int64, p orb.Point) (err error) {
	k := s.buf[:]
	binary.BigEndian.PutUint64(k,uint64(id))
	v := EncodePoint(p)
	s.batch.Put(k,v)
	s.count += len(k)+len(v)
	if s.count > (128<<10) {
		s.count = 0
		err = s.DB.Write(&s.batch,nil)
		s.batch.Reset()
	}
	return
}

func (s *Locations) Flush() (err error) {
	if s.count>0 {
		s.count = 0
		err = s.DB.Write(&s.batch,nil)
		s.batch.Reset()
	}
	return
}

func (s *Locations) Get(id int64) (orb.Point,error) {
	if err := s.Flush(); err!=nil { return orb.Point{},err }
	k := s.buf[:]
	binary.BigEndian.PutUint64(k,uint64(id))
	v,err := s.DB.Get(k,nil)
	if err!=nil { return orb.Point{},err }
	p,ok := DecodePoint(v)
	if !ok { return orb.Point{},ErrNotFound }
	return p,nil
}

func (s *Locations) Close() error {
	if err := s.Flush(); err!=nil { return err }
	return s.DB.Close()
}
