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

package geobuild

import "github.com/paulmach/orb"

/* Member ways of a relation share their end nodes, so endpoint
   comparison only has to absorb float formatting noise, not real
   geometric distance. */
const near0 = 1e-9
const mnear0 = -near0

func isEq(a,b float64) bool {
	c := a-b
	return mnear0<c && c<near0
}
func isEqP(a,b orb.Point) bool {
	return isEq(a[0],b[0]) && isEq(a[1],b[1])
}

func closed(ls orb.LineString) bool {
	return len(ls)>1 && isEqP(ls[0],ls[len(ls)-1])
}


// This builder is for multipolygon-relations
// See: https://wiki.openstreetmap.org/wiki/Relation:multipolygon

type ringElem struct{
	ring orb.Ring       /* complete ring, or nil */
	line orb.LineString /* open fragment, or nil */
	role string
}

type ringStack []ringElem

func (r *ringStack) Push(ls orb.LineString, role string) {
	if len(ls)==0 { return }

	/* A closed member way is already a ring of its own. */
	if closed(ls) {
		*r = append(*r,ringElem{ring:orb.Ring(ls),role:role})
		return
	}

	*r = append(*r,ringElem{line:ls,role:role})
	for r.merge() {}
}

func (r *ringStack) merge() bool {
	lng := len(*r)
	if lng<2 { return false }
	a,b := (*r)[lng-2],(*r)[lng-1]

	if a.role=="" || b.role=="" {
	} else if a.role!=b.role { return false }

	if a.ring!=nil { return false } /* Can't merge if 'A' is a complete ring. */

	if b.ring!=nil { /* 'B' is complete and 'A' isn't: 'A' is a dangling fragment, drop it. */
		(*r)[lng-2] = b
		*r = (*r)[:lng-1]
		return true
	}

	ca := a.line
	cb := b.line

	/* Check, if the ends don't touch */
	if !isEqP(ca[len(ca)-1],cb[0]) { ca,cb = cb,ca } /* Fail, swap, second chance. */
	if !isEqP(ca[len(ca)-1],cb[0]) { return false  } /* Failed again, out! */

	fc := make(orb.LineString,0,len(ca)+len(cb)-1)
	fc = append(fc,ca...)
	fc = append(fc,cb[1:]...)

	if isEqP(fc[0],fc[len(fc)-1]) { /* First and last coordinate equal: a valid ring. */
		a.ring = orb.Ring(fc)
		a.line = nil
	} else {
		a.line = fc
	}

	/* Logical or on string values: if 'A's role is "", use 'B's role. */
	if a.role == "" { a.role = b.role }

	(*r)[lng-2] = a
	*r = (*r)[:lng-1]
	return true
}

func (r *ringStack) AssemblePolygons() (polys []orb.Polygon) {
	polys = make([]orb.Polygon,0,4)
	currentPolygon := make(orb.Polygon,0,4)
	assumeOuter := true
	for _,e := range *r {
		if e.ring==nil { continue } /* Ignore fragments. */
		outer := assumeOuter
		switch e.role {
		case "outer": outer = true
		case "inner": outer = false
		}
		/* The first ring is outer. Others are inner. */
		assumeOuter = false

		/* We start a new Polygon. Finish the previous one if needed. */
		if outer && len(currentPolygon)>0 {
			polys = append(polys,currentPolygon)
			currentPolygon = make(orb.Polygon,0,4)
		}

		currentPolygon = append(currentPolygon,e.ring)
	}

	if len(currentPolygon)>0 { /* Finish the last polygon. */
		polys = append(polys,currentPolygon)
	}
	return
}

func (r *ringStack) Reset() {
	*r = (*r)[:0]
}

type RelPolygons interface{
	Push(ls orb.LineString, role string)
	AssemblePolygons() (polys []orb.Polygon)
	Reset()
}
func NewRelPolygons() RelPolygons { return new(ringStack) }
