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

import "github.com/Mashin6/orthogonalize-polygon/bearing"
import "github.com/paulmach/orb"
import "math"
import "sort"

/* Cardinal direction codes. Interpreted modulo 4: (d+1)%4 and (d+3)%4
   are the two neighbours, (d+2)%4 is the opposite direction. */
const (
	North = iota
	East
	South
	West
)

// SegmentAngles holds, per ring segment, the raw compass bearing, the
// signed deviation from the nearest cardinal direction, and the
// cardinal direction code.
type SegmentAngles struct{
	Org []float64
	Cor []float64
	Dir []int
}

/*
ClassifySegments computes SegmentAngles for every segment of a ring.

maxAngleChange in (0,45] controls the hysteresis: once a segment is
labelled with direction d, the band edges between d and its two
neighbours shift inward by 45-maxAngleChange for the next segment, so
leaving d requires a bearing within maxAngleChange of the *new*
cardinal. 45 disables the hysteresis entirely. The opposite direction
never receives a bias.

The classification of segment i depends on the label of segment i-1, so
this is a sequential scan, not a per-segment map.
*/
func ClassifySegments(r orb.Ring, maxAngleChange float64) SegmentAngles {
	n := len(r)-1
	sa := SegmentAngles{
		Org: make([]float64,n),
		Cor: make([]float64,n),
		Dir: make([]int,n),
	}

	/* limit[d] biases the lower band edge of direction d:
	   boundaries sit at 45+limit[East], 135+limit[South],
	   225+limit[West] and 315+limit[North]. */
	var limit [4]float64
	bias := 45-maxAngleChange

	for i := 0; i<n; i++ {
		/* bearing wants (lat,lon), points store (lon,lat) */
		angle := bearing.Initial(r[i][1],r[i][0],r[i+1][1],r[i+1][0])
		sa.Org[i] = angle

		switch {
		case angle > 45+limit[East] && angle <= 135+limit[South]:
			sa.Cor[i] = angle-90
			sa.Dir[i] = East
		case angle > 135+limit[South] && angle <= 225+limit[West]:
			sa.Cor[i] = angle-180
			sa.Dir[i] = South
		case angle > 225+limit[West] && angle <= 315+limit[North]:
			sa.Cor[i] = angle-270
			sa.Dir[i] = West
		case angle > 315+limit[North]:
			sa.Cor[i] = angle-360
			sa.Dir[i] = North
		default:
			sa.Cor[i] = angle
			sa.Dir[i] = North
		}

		d := sa.Dir[i]
		limit = [4]float64{}
		limit[d] = -bias
		limit[(d+1)%4] = bias
	}
	return sa
}

/*
MedianAngle picks the rotation angle that aligns a ring to the axes:
the median of the deviations, unless their population standard
deviation reaches 30, in which case the ring sits near 45 degrees to
the grid, the deviations cluster around both -45 and +45, and the
median is meaningless; a fixed 45 degree rotation is used instead.
This is a policy taken over from the original pipeline, not a general
statistical test.
*/
func MedianAngle(cor []float64) float64 {
	n := len(cor)
	if n==0 { return 0 }

	mean := 0.0
	for _,v := range cor { mean += v }
	mean /= float64(n)
	sum := 0.0
	for _,v := range cor {
		d := v-mean
		sum += d*d
	}
	if math.Sqrt(sum/float64(n)) >= 30 { return 45 }

	s := append([]float64(nil),cor...)
	sort.Float64s(s)
	if n%2==0 {
		return (s[n/2-1]+s[n/2])/2
	}
	return s[n/2]
}
