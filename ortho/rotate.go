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
import "github.com/paulmach/orb/planar"
import "math"

const fromDegree = math.Pi/180.0

/*
RotateRing rotates a geographic ring by angle degrees about its own
centroid. Positive = counter-clockwise. The ring is projected into the
given planar CRS, rotated there, and projected back, so the rotation is
metrically honest. Returns a fresh ring; the input is not touched.
*/
func RotateRing(r orb.Ring, angle float64, proj projection.IProjection) orb.Ring {
	pl := make(orb.Ring,len(r))
	for i,p := range r { pl[i] = proj.Point(p) }

	ctr,_ := planar.CentroidArea(orb.Polygon{pl})
	sin,cos := math.Sincos(angle*fromDegree)

	out := make(orb.Ring,len(pl))
	for i,p := range pl {
		x := p[0]-ctr[0]
		y := p[1]-ctr[1]
		out[i] = proj.Invert(orb.Point{
			ctr[0] + x*cos - y*sin,
			ctr[1] + x*sin + y*cos,
		})
	}
	return out
}
