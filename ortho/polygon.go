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

import "github.com/Mashin6/orthogonalize-polygon/projection"
import "github.com/paulmach/orb"
import "fmt"

/*
Orthogonalizer makes every interior angle of a polygon ring (close to)
90 or 180 degrees while keeping intentionally skewed walls and the
ring's start point and winding.

Per ring: classify segments without hysteresis, pick the median
rotation angle, rotate the ring flat, re-classify with the hysteresis
band, straighten the runs, rotate back. Exterior and holes are handled
independently; each picks its own angle.
*/
type Orthogonalizer struct{
	MaxAngleChange float64 /* hysteresis pass band, degrees, (0,45] */
	SkewTolerance  float64 /* skewed-wall window around 45, degrees */
	Proj           projection.IProjection
}

/* Defaults mirrors the original pipeline's parameters. */
func Defaults() Orthogonalizer {
	return Orthogonalizer{
		MaxAngleChange: 15,
		SkewTolerance:  15,
		Proj:           projection.PseudoMercator,
	}
}

func (o Orthogonalizer) Ring(r orb.Ring) (orb.Ring,error) {
	if err := ValidateRing(r); err!=nil { return nil,err }

	first := ClassifySegments(r,45) /* steady-state pass, no hysteresis */
	med := MedianAngle(first.Cor)

	rot := RotateRing(r,med,o.Proj)
	sa := ClassifySegments(rot,o.MaxAngleChange)
	rot = StraightenRing(rot,sa,o.SkewTolerance)

	return RotateRing(rot,-med,o.Proj),nil
}

func (o Orthogonalizer) Polygon(p orb.Polygon) (orb.Polygon,error) {
	if len(p)==0 { return nil,EEmptyPolygon }
	out := make(orb.Polygon,len(p))
	for i,r := range p {
		nr,err := o.Ring(r)
		if err!=nil { return nil,fmt.Errorf("ring %d: %w",i,err) }
		out[i] = nr
	}
	return out,nil
}

func (o Orthogonalizer) MultiPolygon(mp orb.MultiPolygon) (orb.MultiPolygon,error) {
	out := make(orb.MultiPolygon,len(mp))
	for i,p := range mp {
		np,err := o.Polygon(p)
		if err!=nil { return nil,fmt.Errorf("polygon %d: %w",i,err) }
		out[i] = np
	}
	return out,nil
}

/* Geometry dispatches on polygonal geometries; anything else is
   returned as-is, untouched. */
func (o Orthogonalizer) Geometry(g orb.Geometry) (orb.Geometry,error) {
	switch v := g.(type) {
	case orb.Polygon:
		return o.Polygon(v)
	case orb.MultiPolygon:
		return o.MultiPolygon(v)
	}
	return g,nil
}
