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
import "math"

/* Rotate a closed coordinate sequence right by shift segments. The
   closing point duplicates the first, so the wrapped slice re-duplicates
   rather than carrying the old closing point along. */
func cycleShift(v []float64, shift int) []float64 {
	m := len(v)
	out := make([]float64,0,m)
	out = append(out,v[m-shift-1:m-1]...)
	out = append(out,v[:m-shift]...)
	return out
}

func cycleUnshift(v []float64, shift int) []float64 {
	m := len(v)
	out := make([]float64,0,m)
	out = append(out,v[shift:]...)
	out = append(out,v[1:shift+1]...)
	return out
}

func mean(v []float64) float64 {
	sum := 0.0
	for _,f := range v { sum += f }
	return sum/float64(len(v))
}

/*
StraightenRing is the core of the orthogonalization: given a ring that
has already been rotated to sit approximately axis-aligned, its segment
angles from the hysteresis classification pass, and a skew tolerance in
[0,45], it returns a ring in which every run of same-direction segments
is perfectly straight.

North/South runs get the mean X coordinate of their points, East/West
runs the mean Y. A segment whose bearing modulo 90 lies strictly inside
(45-skewTolerance, 45+skewTolerance) is an intentionally skewed wall
(bay windows and the like): its points are left untouched and it breaks
any run it borders.

The input ring is never aliased into the result.
*/
func StraightenRing(r orb.Ring, sa SegmentAngles, skewTolerance float64) orb.Ring {
	n := len(sa.Dir)
	dir := append([]int(nil),sa.Dir...)
	org := append([]float64(nil),sa.Org...)
	xs := make([]float64,len(r))
	ys := make([]float64,len(r))
	for i,p := range r {
		xs[i] = p[0]
		ys[i] = p[1]
	}

	/* Segment 0 may continue a straight run that wraps past the closing
	   point. Shift the sequences so the run starts cleanly at index 0. */
	shift := 0
	for i := 1; i<n; i++ {
		if dir[0]!=dir[n-i] { break }
		shift = i
	}
	if shift!=0 {
		dir = append(append(make([]int,0,n),dir[n-shift:]...),dir[:n-shift]...)
		org = append(append(make([]float64,0,n),org[n-shift:]...),org[:n-shift]...)
		xs = cycleShift(xs,shift)
		ys = cycleShift(ys,shift)
	}

	/* An opposite-direction label inside a straight run (N<->S, E<->W,
	   code distance exactly 2) is classifier noise, never a real turn:
	   a real turn moves the code by 1 or 3 mod 4. Relabel with the
	   previous segment's direction. */
	for i := 0; i<n; i++ {
		d := dir[i]-dir[(i+1)%n]
		if d==2 || d==-2 {
			dir[i] = dir[(i-1+n)%n]
		}
	}

	skewed := make([]bool,n)
	for i := 0; i<n; i++ {
		dev := math.Mod(org[i],90)
		if dev > 45-skewTolerance && dev < 45+skewTolerance {
			skewed[i] = true
		}
	}

	var segmentBuffer []int
	for i := 0; i<n; i++ {
		if skewed[i] {
			segmentBuffer = segmentBuffer[:0]
			continue
		}
		segmentBuffer = append(segmentBuffer,i)

		/* Keep extending while the next segment continues straight. */
		if i+1<n && dir[i]==dir[i+1] && !skewed[i+1] { continue }

		lo := segmentBuffer[0]
		hi := segmentBuffer[len(segmentBuffer)-1]+1 /* run of k segments spans k+1 points */
		if dir[i]==North || dir[i]==South {
			m := mean(xs[lo:hi+1])
			for j := lo; j<=hi; j++ { xs[j] = m }
		} else {
			m := mean(ys[lo:hi+1])
			for j := lo; j<=hi; j++ { ys[j] = m }
		}
		if lo==0 {
			/* The run owns the start point: mirror it onto the closing
			   point so the change survives the reverse shift. */
			xs[len(xs)-1] = xs[0]
			ys[len(ys)-1] = ys[0]
		}
		segmentBuffer = segmentBuffer[:0]
	}

	if shift!=0 {
		xs = cycleUnshift(xs,shift)
		ys = cycleUnshift(ys,shift)
	} else {
		xs[0] = xs[len(xs)-1]
		ys[0] = ys[len(ys)-1]
	}

	out := make(orb.Ring,len(r))
	for i := range out {
		out[i] = orb.Point{xs[i],ys[i]}
	}
	return out
}
