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

package ortho

import "github.com/paulmach/orb"

type EValidation uint

const (
	EShortRing EValidation = iota
	ENonClosedRing
	EEmptyPolygon
)

var errReasons = [...]string{
	"ring must have at least four points",
	"ring is not closed",
	"polygon must have at least one ring",
}

func (e EValidation) Error() string {
	if EValidation(uint(len(errReasons)))<=e { return "???" }
	return errReasons[e]
}

/* Degenerate rings must be rejected before classification: a ring of
   fewer than four points has no angles to speak of, and the wrap-around
   logic assumes first==last. */
func ValidateRing(r orb.Ring) error {
	if len(r) < 4 { return EShortRing }
	if !r[0].Equal(r[len(r)-1]) { return ENonClosedRing }
	return nil
}

func ValidatePolygon(p orb.Polygon) error {
	if len(p)==0 { return EEmptyPolygon }
	for _,r := range p {
		if err := ValidateRing(r); err!=nil { return err }
	}
	return nil
}

/* ValidateOrRepairPolygon keeps a polygon with a valid exterior,
   silently dropping broken holes. If the exterior itself is invalid,
   it aborts. */
func ValidateOrRepairPolygon(p orb.Polygon) (orb.Polygon,error) {
	if len(p)==0 { return nil,EEmptyPolygon }
	if err := ValidateRing(p[0]); err!=nil { return nil,err }
	out := make(orb.Polygon,0,len(p))
	out = append(out,p[0])
	for _,r := range p[1:] {
		if ValidateRing(r)!=nil { continue }
		out = append(out,r)
	}
	return out,nil
}
