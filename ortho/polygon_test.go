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
import "testing"

import "github.com/stretchr/testify/assert"

func noisyRect() orb.Ring {
	return orb.Ring{
		{0,0},
		{0.001,0.00001},
		{0.00102,0.001},
		{0.00001,0.00099},
		{0,0},
	}
}

func rotated(r orb.Ring, deg float64) orb.Ring {
	sin,cos := math.Sincos(deg*math.Pi/180)
	out := make(orb.Ring,len(r))
	for i,p := range r {
		out[i] = orb.Point{p[0]*cos - p[1]*sin,p[0]*sin + p[1]*cos}
	}
	return out
}

/* corSpread measures how orthogonal a ring is independent of its
   orientation: on a perfect rectangle every segment deviates from its
   cardinal by the same tilt, so the spread collapses to zero. */
func corSpread(r orb.Ring) float64 {
	sa := ClassifySegments(r,45)
	lo,hi := sa.Cor[0],sa.Cor[0]
	for _,c := range sa.Cor[1:] {
		if c<lo { lo = c }
		if c>hi { hi = c }
	}
	return hi-lo
}

func TestRingSquaresTiltedRectangle(t *testing.T) {
	in := rotated(noisyRect(),10)
	o := Defaults()

	out,err := o.Ring(in)
	assert.NoError(t,err)
	assert.Len(t,out,5)
	assert.Equal(t,out[0],out[4])
	assert.Less(t,corSpread(out),0.01)
	assert.True(t,out[0].Equal(out[len(out)-1]))
}

/* An already-orthogonal square tilted 5 degrees: the median deviation
   recovers the tilt and the pipeline reduces to the identity. */
func TestRingTiltedSquare(t *testing.T) {
	sq := orb.Ring{{0,0},{0.001,0},{0.001,0.001},{0,0.001},{0,0}}
	in := rotated(sq,-5) /* clockwise tilt: every bearing gains 5 degrees */

	sa := ClassifySegments(in,45)
	assert.InDelta(t,5,MedianAngle(sa.Cor),0.01)

	out,err := Defaults().Ring(in)
	assert.NoError(t,err)
	assert.Len(t,out,5)
	for i := range in {
		assert.InDelta(t,in[i][0],out[i][0],1e-6,"point %d x",i)
		assert.InDelta(t,in[i][1],out[i][1],1e-6,"point %d y",i)
	}
}

func TestRingIdempotent(t *testing.T) {
	o := Defaults()
	once,err := o.Ring(rotated(noisyRect(),10))
	assert.NoError(t,err)
	twice,err := o.Ring(once)
	assert.NoError(t,err)

	assert.Len(t,twice,len(once))
	for i := range once {
		assert.InDelta(t,once[i][0],twice[i][0],1e-7,"point %d x",i)
		assert.InDelta(t,once[i][1],twice[i][1],1e-7,"point %d y",i)
	}
}

func TestPolygonWithHole(t *testing.T) {
	p := orb.Polygon{
		{
			{0,0},
			{0.002,0.00002},
			{0.00204,0.002},
			{0.00002,0.00198},
			{0,0},
		},
		{
			{0.0005,0.0005},
			{0.0005,0.0015},
			{0.0015,0.0015},
			{0.0015,0.0005},
			{0.0005,0.0005},
		},
	}
	assert.Equal(t,orb.CCW,p[0].Orientation())
	assert.Equal(t,orb.CW,p[1].Orientation())

	o := Defaults()
	out,err := o.Polygon(p)
	assert.NoError(t,err)
	assert.Len(t,out,2)
	for i,r := range out {
		assert.Equal(t,len(p[i]),len(r))
		assert.Equal(t,r[0],r[len(r)-1])
		assert.Less(t,corSpread(r),0.01)
	}

	/* winding survives */
	assert.Equal(t,orb.CCW,out[0].Orientation())
	assert.Equal(t,orb.CW,out[1].Orientation())
}

func TestMultiPolygon(t *testing.T) {
	mp := orb.MultiPolygon{
		{noisyRect()},
		{rotated(noisyRect(),30)},
	}
	o := Defaults()
	out,err := o.MultiPolygon(mp)
	assert.NoError(t,err)
	assert.Len(t,out,2)
	for _,p := range out {
		assert.Less(t,corSpread(p[0]),0.01)
	}
}

func TestGeometryDispatch(t *testing.T) {
	o := Defaults()

	ls := orb.LineString{{0,0},{1,1}}
	got,err := o.Geometry(ls)
	assert.NoError(t,err)
	assert.Equal(t,orb.Geometry(ls),got)

	pt := orb.Point{1,2}
	got,err = o.Geometry(pt)
	assert.NoError(t,err)
	assert.Equal(t,orb.Geometry(pt),got)

	pg,err := o.Geometry(orb.Polygon{noisyRect()})
	assert.NoError(t,err)
	assert.IsType(t,orb.Polygon{},pg)
}

func TestOrthogonalizeErrors(t *testing.T) {
	o := Defaults()

	_,err := o.Ring(orb.Ring{{0,0},{1,1},{0,0}})
	assert.ErrorIs(t,err,EShortRing)

	_,err = o.Ring(orb.Ring{{0,0},{1,0},{1,1},{0,1}})
	assert.ErrorIs(t,err,ENonClosedRing)

	_,err = o.Polygon(orb.Polygon{})
	assert.ErrorIs(t,err,EEmptyPolygon)

	/* ring errors inside a polygon carry the ring index */
	_,err = o.Polygon(orb.Polygon{noisyRect(),{{0,0},{1,1},{0,0}}})
	assert.ErrorIs(t,err,EShortRing)
	assert.Contains(t,err.Error(),"ring 1")
}
