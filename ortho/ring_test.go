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
import "testing"

import "github.com/stretchr/testify/assert"

func TestStraightenRingRectangle(t *testing.T) {
	r := orb.Ring{
		{0,0},
		{0.001,0.00001},
		{0.00102,0.001},
		{0.00001,0.00099},
		{0,0},
	}
	orig := append(orb.Ring(nil),r...)

	sa := ClassifySegments(r,45)
	assert.Equal(t,[]int{East,North,West,South},sa.Dir)

	out := StraightenRing(r,sa,15)

	want := orb.Ring{
		{0.000005,0.000005},
		{0.00101,0.000005},
		{0.00101,0.000995},
		{0.000005,0.000995},
		{0.000005,0.000005},
	}
	assert.Len(t,out,5)
	for i := range want {
		assert.InDelta(t,want[i][0],out[i][0],1e-12,"point %d x",i)
		assert.InDelta(t,want[i][1],out[i][1],1e-12,"point %d y",i)
	}
	assert.Equal(t,out[0],out[4])

	/* the input ring must not be written through */
	assert.Equal(t,orig,r)
}

/* A ring whose start point sits in the middle of a wall: the two
   west segments wrap around the closing point and must still be
   averaged as one run. */
func TestStraightenRingWrappedRun(t *testing.T) {
	r := orb.Ring{
		{0.0005,0.00101}, /* mid-wall start */
		{0,0.00099},
		{0,0},
		{0.001,0},
		{0.001,0.001},
		{0.0005,0.00101},
	}
	sa := ClassifySegments(r,45)
	assert.Equal(t,[]int{West,South,East,North,West},sa.Dir)

	out := StraightenRing(r,sa,15)

	assert.Len(t,out,6)
	assert.Equal(t,out[0],out[5])

	/* all three points of the wrapped west wall share the mean y */
	assert.InDelta(t,0.001,out[0][1],1e-12)
	assert.InDelta(t,0.001,out[1][1],1e-12)
	assert.InDelta(t,0.001,out[4][1],1e-12)

	/* point order is preserved: the start point keeps its x */
	assert.InDelta(t,0.0005,out[0][0],1e-12)
	assert.InDelta(t,0,out[1][0],1e-12)
	assert.InDelta(t,0.001,out[4][0],1e-12)
}

/* A 48-degree wall inside the tolerance window around 45 is an
   intentional skew: it passes through untouched and splits the runs
   around it. */
func TestStraightenRingSkewedWall(t *testing.T) {
	r := orb.Ring{
		{0,0},
		{0.001,0},
		{0.00152,0.000468}, /* bearing ~48 off the east wall */
		{0.00152,0.001},
		{0,0.001},
		{0,0},
	}
	sa := ClassifySegments(r,45)

	out := StraightenRing(r,sa,15)
	assert.Equal(t,r,out)

	/* with the window closed the same wall is treated as noise and
	   averaged into the east run */
	flat := StraightenRing(r,sa,0)
	assert.InDelta(t,0.000156,flat[1][1],1e-9)
	assert.InDelta(t,0.000156,flat[2][1],1e-9)
}

/* A skewed wall shares its vertices with the neighboring runs. The
   wall's own segment is never averaged, but a noisy neighbor run still
   owns the shared vertex and writes its mean through it: only the
   coordinate the wall does not share with any run survives exactly. */
func TestSkewedWallSharedEndpoint(t *testing.T) {
	r := orb.Ring{
		{0,0},
		{0.001,0.00002},    /* noisy east wall, skew wall starts here */
		{0.00152,0.000488}, /* bearing ~48 off the east wall */
		{0.00152,0.001},
		{0,0.001},
		{0,0},
	}
	sa := ClassifySegments(r,45)
	assert.Equal(t,[]int{East,East,North,West,South},sa.Dir)

	out := StraightenRing(r,sa,15)

	/* the east run's mean y moves the wall's start vertex */
	assert.InDelta(t,0.00001,out[0][1],1e-12)
	assert.InDelta(t,0.00001,out[1][1],1e-12)
	assert.InDelta(t,0.001,out[1][0],1e-12)

	/* the wall's end vertex borders an exact run and stays put */
	assert.Equal(t,r[2],out[2])
}

/* Degenerate labelling: every segment shares one direction. The whole
   ring collapses onto a single mean coordinate and the cycle shift
   must restore the original point order. */
func TestStraightenRingSingleRun(t *testing.T) {
	r := orb.Ring{
		{0,0},
		{0.0001,0.0003},
		{-0.0001,0.0006},
		{0,0},
	}
	sa := SegmentAngles{
		Org: []float64{0,0,0},
		Cor: []float64{0,0,0},
		Dir: []int{North,North,North},
	}
	out := StraightenRing(r,sa,15)

	assert.Len(t,out,4)
	for i := range out {
		assert.InDelta(t,0.000025,out[i][0],1e-12,"point %d x",i)
		assert.InDelta(t,r[i][1],out[i][1],1e-12,"point %d y",i)
	}
}
