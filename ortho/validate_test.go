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

func TestValidateRing(t *testing.T) {
	closed := orb.Ring{{0,0},{1,0},{1,1},{0,0}}
	assert.NoError(t,ValidateRing(closed))
	assert.ErrorIs(t,ValidateRing(orb.Ring{{0,0},{1,1},{0,0}}),EShortRing)
	assert.ErrorIs(t,ValidateRing(orb.Ring{{0,0},{1,0},{1,1},{0,1}}),ENonClosedRing)
}

func TestValidatePolygon(t *testing.T) {
	good := orb.Polygon{{{0,0},{1,0},{1,1},{0,0}}}
	assert.NoError(t,ValidatePolygon(good))
	assert.ErrorIs(t,ValidatePolygon(orb.Polygon{}),EEmptyPolygon)
	assert.ErrorIs(t,ValidatePolygon(orb.Polygon{{{0,0},{1,1},{0,0}}}),EShortRing)
}

func TestValidateOrRepairPolygon(t *testing.T) {
	ext := orb.Ring{{0,0},{4,0},{4,4},{0,0}}
	hole := orb.Ring{{1,1},{1,2},{2,2},{1,1}}
	broken := orb.Ring{{1,1},{2,2},{1,1}}

	out,err := ValidateOrRepairPolygon(orb.Polygon{ext,broken,hole})
	assert.NoError(t,err)
	assert.Equal(t,orb.Polygon{ext,hole},out)

	_,err = ValidateOrRepairPolygon(orb.Polygon{broken})
	assert.ErrorIs(t,err,EShortRing)

	_,err = ValidateOrRepairPolygon(orb.Polygon{})
	assert.ErrorIs(t,err,EEmptyPolygon)
}

func TestValidationMessages(t *testing.T) {
	assert.NotEqual(t,"???",EShortRing.Error())
	assert.NotEqual(t,"???",ENonClosedRing.Error())
	assert.NotEqual(t,"???",EEmptyPolygon.Error())
	assert.Equal(t,"???",EValidation(99).Error())
}
