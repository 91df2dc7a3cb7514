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

package sink

import "github.com/Mashin6/orthogonalize-polygon/projection"
import "github.com/paulmach/orb"
import geom "github.com/twpayne/go-geom"
import "fmt"

func ringCoords(r orb.Ring) []geom.Coord {
	cs := make([]geom.Coord,len(r))
	for i,p := range r { cs[i] = geom.Coord{p[0],p[1]} }
	return cs
}

func toPolygon(p orb.Polygon, srid int) (*geom.Polygon,error) {
	coords := make([][]geom.Coord,len(p))
	for i,r := range p { coords[i] = ringCoords(r) }
	pg := geom.NewPolygon(geom.XY)
	if _,err := pg.SetCoords(coords); err!=nil { return nil,err }
	return pg.SetSRID(srid),nil
}

func toMultiPolygon(mp orb.MultiPolygon, srid int) (*geom.MultiPolygon,error) {
	coords := make([][][]geom.Coord,len(mp))
	for i,p := range mp {
		pc := make([][]geom.Coord,len(p))
		for j,r := range p { pc[j] = ringCoords(r) }
		coords[i] = pc
	}
	mg := geom.NewMultiPolygon(geom.XY)
	if _,err := mg.SetCoords(coords); err!=nil { return nil,err }
	return mg.SetSRID(srid),nil
}

/* Convert re-expresses an orb polygonal geometry as go-geom, for EWKB. */
func Convert(g orb.Geometry, srid int) (geom.T,error) {
	switch v := g.(type) {
	case orb.Polygon:
		return toPolygon(v,srid)
	case orb.MultiPolygon:
		return toMultiPolygon(v,srid)
	}
	return nil,fmt.Errorf("unsupported geometry type %s",g.GeoJSONType())
}

func reproject(g orb.Geometry, proj projection.IProjection) orb.Geometry {
	switch v := g.(type) {
	case orb.Polygon:
		out := make(orb.Polygon,len(v))
		for i,r := range v {
			nr := make(orb.Ring,len(r))
			for j,p := range r { nr[j] = proj.Point(p) }
			out[i] = nr
		}
		return out
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon,len(v))
		for i,p := range v {
			out[i] = reproject(p,proj).(orb.Polygon)
		}
		return out
	}
	return g
}
