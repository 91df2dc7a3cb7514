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

package osmx

import "github.com/Mashin6/orthogonalize-polygon/geobuild"
import "github.com/Mashin6/orthogonalize-polygon/nodecache"
import "github.com/Mashin6/orthogonalize-polygon/store"
import "github.com/Mashin6/orthogonalize-polygon/style"
import "github.com/paulmach/orb"
import "github.com/paulmach/osm"
import "fmt"

/* A building footprint pulled out of an OSM extract. IDs follow the
   osm2pgsql convention: positive for ways, negated for relations. */
type Building struct{
	ID int64
	OsmType string /* "way" or "relation" */
	Tags map[string]string
	Geometry orb.Geometry /* orb.Polygon or orb.MultiPolygon */
}

/*
Extractor turns a node/way/relation stream into Buildings. Node
locations go through Cache (freecache-shaped) with Store as the
disk-backed fallback; way node-refs are held in memory until the
relations arrive, since OSM files order relations last.
*/
type Extractor struct{
	Cache nodecache.Cache
	Store *store.Locations
	Style style.Style

	ways map[osm.WayID][]osm.NodeID

	Nodes,Ways,Relations int
}

func New(cache nodecache.Cache, st *store.Locations, stl style.Style) *Extractor {
	if cache==nil && st==nil {
		cache = nodecache.NewFree(128<<20)
	}
	if stl==nil { stl = style.Default() }
	return &Extractor{
		Cache: cache,
		Store: st,
		Style: stl,
		ways: make(map[osm.WayID][]osm.NodeID),
	}
}

func (e *Extractor) AddNode(n *osm.Node) error {
	e.Nodes++
	p := orb.Point{n.Lon,n.Lat}
	if e.Cache!=nil {
		e.Cache.SetInt(int64(n.ID),store.EncodePoint(p),0)
	}
	if e.Store!=nil {
		return e.Store.Put(int64(n.ID),p)
	}
	return nil
}

func (e *Extractor) node(id osm.NodeID) (orb.Point,bool) {
	if e.Cache!=nil {
		if v,err := e.Cache.GetInt(int64(id)); err==nil {
			if p,ok := store.DecodePoint(v); ok { return p,true }
		}
	}
	if e.Store!=nil {
		p,err := e.Store.Get(int64(id))
		if err==nil {
			if e.Cache!=nil {
				e.Cache.SetInt(int64(id),store.EncodePoint(p),0)
			}
			return p,true
		}
	}
	return orb.Point{},false
}

func (e *Extractor) line(refs []osm.NodeID) (orb.LineString,error) {
	ls := make(orb.LineString,len(refs))
	for i,id := range refs {
		p,ok := e.node(id)
		if !ok { return nil,fmt.Errorf("node %d: location unknown",id) }
		ls[i] = p
	}
	return ls,nil
}

/* AddWay registers the way's node refs for later relation assembly and,
   if it is a closed building outline, returns it as a Building.
   A nil,nil return means "not a building", not an error. */
func (e *Extractor) AddWay(w *osm.Way) (*Building,error) {
	e.Ways++
	refs := make([]osm.NodeID,len(w.Nodes))
	for i,n := range w.Nodes { refs[i] = n.ID }
	e.ways[w.ID] = refs

	tags := w.Tags.Map()
	if !e.Style.IsBuilding(tags) { return nil,nil }
	if len(refs)<4 || refs[0]!=refs[len(refs)-1] {
		return nil,fmt.Errorf("way %d: building outline is not a closed ring",w.ID)
	}
	ls,err := e.line(refs)
	if err!=nil { return nil,fmt.Errorf("way %d: %w",w.ID,err) }
	return &Building{
		ID: int64(w.ID),
		OsmType: "way",
		Tags: e.Style.FilterTags("way",tags),
		Geometry: orb.Polygon{orb.Ring(ls)},
	},nil
}

/* AddRelation assembles a multipolygon/building relation from its
   member ways. Members missing from the extract are skipped. */
func (e *Extractor) AddRelation(r *osm.Relation) (*Building,error) {
	e.Relations++
	tags := r.Tags.Map()
	if !e.Style.IsBuilding(tags) { return nil,nil }
	switch tags["type"] {
	case "multipolygon","building":
	default: return nil,nil
	}

	stack := geobuild.NewRelPolygons()
	for _,m := range r.Members {
		if m.Type!=osm.TypeWay { continue }
		refs,ok := e.ways[osm.WayID(m.Ref)]
		if !ok { continue }
		ls,err := e.line(refs)
		if err!=nil { continue }
		stack.Push(ls,m.Role)
	}
	polys := stack.AssemblePolygons()
	if len(polys)==0 { return nil,nil }

	var g orb.Geometry
	if len(polys)==1 {
		g = polys[0]
	} else {
		g = orb.MultiPolygon(polys)
	}
	return &Building{
		ID: -int64(r.ID),
		OsmType: "relation",
		Tags: e.Style.FilterTags("relation",tags),
		Geometry: g,
	},nil
}

/* Add dispatches a scanner object. Nodes never yield a Building. */
func (e *Extractor) Add(o osm.Object) (*Building,error) {
	switch v := o.(type) {
	case *osm.Node:
		return nil,e.AddNode(v)
	case *osm.Way:
		return e.AddWay(v)
	case *osm.Relation:
		return e.AddRelation(v)
	}
	return nil,nil
}
