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

package nodecache

import "container/list"
import "github.com/couchbase/go-slab"
import "github.com/coocood/freecache"
import "fmt"

var ENotFound = fmt.Errorf("Error: Not Found")
var EAllocation = fmt.Errorf("Error: Allocation")

/* The node-id keyed cache interface. Based upon freecache's interface,
   which satisfies it directly. */

type Cache interface{
	GetInt(key int64) (value []byte, err error)
	SetInt(key int64, value []byte, expireSeconds int) (err error)
	DelInt(key int64) (affected bool)
}

/* NewFree builds a freecache-backed Cache of the given byte size. */
func NewFree(size int) Cache { return freecache.NewCache(size) }

/*
[ recent-ghosts <-[ recent <-!-> frequent ]-> frequent-ghost ]
*/
type area uint
const (
	recent_ghost area = iota
	recent
	frequent
	frequent_ghost
	/* Not an area. */
	num_areas
)

type entry struct {
	key int64
	area area
	buffer []byte
}

/*
[ .... recent-ghost ...,GR,... recent ...,M,... frequent ...,GF,... frequent-ghost .... ]
*/
type cachelist struct {
	lst     *list.List
	gr,m,gf *list.Element
	index   map[int64] *list.Element
	arena   *slab.Arena
	count   [num_areas]int64
	target  [num_areas]int64
}

func (c *cachelist) init(cache int64, ghost int64) {
	c.lst = list.New()
	c.gr = c.lst.PushBack(nil)
	c.m  = c.lst.PushBack(nil)
	c.gf = c.lst.PushBack(nil)
	c.index = make(map[int64] *list.Element)

	c.target[recent  ] = cache
	c.target[frequent] = cache
	c.target[recent_ghost  ] = ghost
	c.target[frequent_ghost] = ghost
}

func (c *cachelist) clearEntry(e *entry, a area) {
	e.area = a
	if len(e.buffer) == 0 { return }
	c.arena.DecRef(e.buffer)
	e.buffer = nil
}

func (c *cachelist) evict() {
	for c.count[recent]>c.target[recent] {
		e := c.gr.Next()
		c.lst.MoveBefore(e,c.gr)
		c.clearEntry(e.Value.(*entry),recent_ghost)
		c.count[recent]--
		c.count[recent_ghost]++
	}
	for c.count[frequent]>c.target[frequent] {
		e := c.gf.Prev()
		c.lst.MoveAfter(e,c.gf)
		c.clearEntry(e.Value.(*entry),frequent_ghost)
		c.count[frequent]--
		c.count[frequent_ghost]++
	}
	for c.count[recent_ghost]>c.target[recent_ghost] {
		e := c.lst.Front()
		c.lst.Remove(e)
		delete(c.index,e.Value.(*entry).key)
		c.count[recent_ghost]--
	}
	for c.count[frequent_ghost]>c.target[frequent_ghost] {
		e := c.lst.Back()
		c.lst.Remove(e)
		delete(c.index,e.Value.(*entry).key)
		c.count[frequent_ghost]--
	}
}

func (c *cachelist) migrate(e1 *list.Element, e2 *entry, a area) {
	c.count[e2.area]--
	c.count[a]++
	e2.area = a
	switch a {
	case recent_ghost:
		c.lst.MoveBefore(e1,c.gr)
	case recent:
		c.lst.MoveBefore(e1,c.m)
	case frequent:
		c.lst.MoveAfter(e1,c.m)
	case frequent_ghost:
		c.lst.MoveAfter(e1,c.gf)
	}
	c.evict()
}

func (c *cachelist) insert(e2 *entry, a area) {
	c.count[a]++
	e2.area = a
	switch a {
	case recent_ghost:
		c.index[e2.key] = c.lst.InsertBefore(e2,c.gr)
	case recent:
		c.index[e2.key] = c.lst.InsertBefore(e2,c.m)
	case frequent:
		c.index[e2.key] = c.lst.InsertAfter(e2,c.m)
	case frequent_ghost:
		c.index[e2.key] = c.lst.InsertAfter(e2,c.gf)
	}
	c.evict()
}

/* refill re-points an entry's buffer at a fresh arena block holding v. */
func (c *cachelist) refill(e *entry, v []byte) error {
	if len(e.buffer)>0 {
		c.arena.DecRef(e.buffer)
		e.buffer = nil
	}
	if len(v)>0 {
		e.buffer = c.arena.Alloc(len(v))
	}
	if len(e.buffer)<len(v) { return EAllocation }
	copy(e.buffer,v)
	return nil
}

func (c *cachelist) get(i int64) ([]byte,error) {
	if elem,ok := c.index[i]; ok {
		e := elem.Value.(*entry)
		switch e.area {
		case recent:
			c.migrate(elem,e,frequent)
			return e.buffer,nil
		case frequent:
			c.lst.MoveAfter(elem,c.m) /* Move-To-Front */
			return e.buffer,nil
		}
	}
	return nil,ENotFound
}

func (c *cachelist) set(i int64,v []byte) error {
	if elem,ok := c.index[i]; ok {
		e := elem.Value.(*entry)
		if err := c.refill(e,v); err!=nil {
			if e.area==recent || e.area==frequent {
				c.lst.Remove(elem)
				c.count[e.area]--
				delete(c.index,i)
			}
			return err
		}
		switch e.area {
		case recent,frequent:
			return nil
		case recent_ghost:
			/* A ghost hit on the recent side: grow the recent target. */
			if c.target[frequent]>0 {
				c.target[frequent]--
				c.target[recent]++
			}
			c.migrate(elem,e,recent)
			return nil
		case frequent_ghost:
			if c.target[recent]>0 {
				c.target[recent]--
				c.target[frequent]++
			}
			c.migrate(elem,e,frequent)
			return nil
		}
	}

	e := &entry{ key: i }
	if err := c.refill(e,v); err!=nil { return err }
	c.insert(e,recent)
	return nil
}

func (c *cachelist) del(i int64) bool {
	elem,ok := c.index[i]
	if !ok { return false }
	e := elem.Value.(*entry)
	c.count[e.area]--
	c.clearEntry(e,e.area)
	c.lst.Remove(elem)
	delete(c.index,i)
	return true
}

func (c *cachelist) GetInt(key int64) (value []byte, err error) { return c.get(key) }
func (c *cachelist) SetInt(key int64, value []byte, expireSeconds int) (err error) { return c.set(key,value) }
func (c *cachelist) DelInt(key int64) (affected bool) { return c.del(key) }

/* NewARC creates a cache that roughly resembles an Adaptive Replacement
   Cache: cache entries per side, ghost entries remembering recent
   evictions to steer the recent/frequent balance. */
func NewARC(a *slab.Arena, cache, ghost int) Cache {
	cl := new(cachelist)
	cl.init(int64(cache),int64(ghost))
	cl.arena = a
	return cl
}
