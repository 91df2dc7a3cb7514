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

func TestClassifySegmentsSquare(t *testing.T) {
	r := orb.Ring{{0,0},{0.001,0},{0.001,0.001},{0,0.001},{0,0}}
	sa := ClassifySegments(r,45)

	assert.Equal(t,[]int{East,North,West,South},sa.Dir)
	wantOrg := []float64{90,0,270,180}
	for i := range sa.Org {
		assert.InDelta(t,wantOrg[i],sa.Org[i],1e-6)
		assert.InDelta(t,0,sa.Cor[i],1e-6)
	}
}

/* The hysteresis keeps a mildly drifting wall in its old direction: a
   50-degree bearing after a north segment stays North unless it comes
   within maxAngleChange of due east. */
func TestClassifySegmentsHysteresis(t *testing.T) {
	r := orb.Ring{
		{0,0},
		{0,0.001},              /* due north */
		{0.000766,0.001643},    /* bearing ~50 */
		{0.001751,0.001817},    /* bearing ~80 */
	}

	strict := ClassifySegments(r,45)
	assert.Equal(t,[]int{North,East,East},strict.Dir)
	assert.InDelta(t,-40,strict.Cor[1],0.1)

	sticky := ClassifySegments(r,15)
	assert.Equal(t,[]int{North,North,East},sticky.Dir)
	assert.InDelta(t,50,sticky.Cor[1],0.1)   /* still measured against north */
	assert.InDelta(t,-10,sticky.Cor[2],0.1)  /* 80 is within 15 of east */
}

func TestMedianAngle(t *testing.T) {
	tests := []struct{
		name string
		cor  []float64
		want float64
	}{
		{"empty",nil,0},
		{"odd count takes the middle",[]float64{3,-1,2},2},
		{"even count averages the middle two",[]float64{1,2,3,10},2.5},
		{"wide spread falls back to 45",[]float64{-44,44,-43,43},45},
	}
	for _,tt := range tests {
		t.Run(tt.name,func(t *testing.T) {
			assert.InDelta(t,tt.want,MedianAngle(tt.cor),1e-9)
		})
	}
}
