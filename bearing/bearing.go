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

package bearing

import "math"

const fromDegree = math.Pi/180.0
const toDegree = 180.0/math.Pi

/*
Initial computes the initial great-circle compass bearing from point A
to point B, in degrees [0,360).

	θ = atan2( sin(Δlong)·cos(lat2), cos(lat1)·sin(lat2) − sin(lat1)·cos(lat2)·cos(Δlong) )

Arguments are in (latitude, longitude) order, decimal degrees. Geometry
elsewhere in this module stores points as (longitude, latitude), so call
sites must swap explicitly.
*/
func Initial(latA, lonA, latB, lonB float64) float64 {
	lat1 := latA*fromDegree
	lat2 := latB*fromDegree
	diffLong := (lonB-lonA)*fromDegree

	x := math.Sin(diffLong) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(diffLong)

	/* atan2 yields -180..+180, a compass bearing wants 0..360 */
	return math.Mod(math.Atan2(x,y)*toDegree+360, 360)
}
