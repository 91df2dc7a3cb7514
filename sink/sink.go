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

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/lib/pq/hstore"
)

import "github.com/Mashin6/orthogonalize-polygon/projection"
import "github.com/Mashin6/orthogonalize-polygon/style"
import "github.com/paulmach/orb"
import "github.com/paulmach/orb/planar"
import "github.com/twpayne/go-geom/encoding/ewkb"
import "encoding/binary"
import "bytes"
import "fmt"
import "strings"
import "strconv"

/*
Builder writes building footprints into a PostGIS table shaped by a
style: one column per selected tag, leftover tags in an hstore, the
footprint itself as geometry via ST_GeomFromEWKB. Upserts by osm_id.
*/
type Builder struct{
	DB    *sql.DB
	Tname string
	Csql,Isql,Usql string
	HasWayArea bool
	Style style.Style /* Filtered */
	Proj  projection.Projection /* planar CRS for way_area */

	psm map[string]*sql.Stmt
}

func (b *Builder) Init(tabname string, stl style.Style) *Builder {
	b.Tname = tabname
	var create,insert,values,update bytes.Buffer

	fmt.Fprintf(&create,"CREATE TABLE IF NOT EXISTS %s (osm_id bigint PRIMARY KEY" /*)*/,tabname)
	fmt.Fprintf(&insert,"INSERT INTO %s (osm_id,tags,way" /*)*/,tabname)
	fmt.Fprintf(&values,/*(*/ ") VALUES ($1,$2,ST_GeomFromEWKB($3)")
	fmt.Fprintf(&update,"UPDATE %s SET tags=$2, way=ST_GeomFromEWKB($3)",tabname)

	b.Style = make(style.Style,0,len(stl))
	for _,line := range stl {
		if !line.HasFlag("polygon") { continue }
		if line.Tag=="way_area" {
			b.HasWayArea = true
			continue
		}
		b.Style = append(b.Style,line)
	}
	off := 4
	if b.HasWayArea {
		fmt.Fprintf(&insert,",way_area")
		fmt.Fprintf(&values,",$%d",off)
		fmt.Fprintf(&update,",way_area = $%d",off)
		off++
	}

	for i,line := range b.Style {
		fmt.Fprintf(&create,",\"%s\" %s",line.Tag,line.DataType)
		fmt.Fprintf(&insert,",\"%s\"",line.Tag)
		fmt.Fprintf(&values,",$%d",i+off)
		fmt.Fprintf(&update,",\"%s\" = $%d",line.Tag,i+off)
	}

	if b.HasWayArea { fmt.Fprintf(&create,",\nway_area real") }

	fmt.Fprintf(&create,/*(*/ ",\ntags hstore, way geometry)")
	values.WriteTo(&insert)
	fmt.Fprintf(&insert,/*(*/ ")")

	fmt.Fprintf(&update," WHERE osm_id=$1")

	b.Csql = create.String()
	b.Isql = insert.String()
	b.Usql = update.String()

	return b
}

func (b *Builder) TouchTables() error {
	_,err := b.DB.Exec(b.Csql)
	return err
}

func (b *Builder) Get(sqltext string) (*sql.Stmt,error) {
	if b.psm==nil { b.psm = make(map[string]*sql.Stmt) }
	if s,ok := b.psm[sqltext]; ok { return s,nil }
	s,err := b.DB.Prepare(sqltext)
	if err!=nil { return nil,err }
	b.psm[sqltext] = s
	return s,nil
}

func rescount(r sql.Result,err error) int64 {
	if err!=nil { return -1 }
	n,err := r.RowsAffected()
	if err!=nil { return -1 }
	return n
}

/* Orthogonalized output stays geographic; Proj only serves way_area. */
const outputSRID = 4326

func (b *Builder) Insert(osm_id int64, tags map[string]string, g orb.Geometry) error {
	gg,err := Convert(g,outputSRID)
	if err!=nil { return err }
	waybin,err := ewkb.Marshal(gg,binary.LittleEndian)
	if err!=nil { return err }

	hs := hstore.Hstore{Map: make(map[string]sql.NullString,len(tags))}
	for k,v := range tags {
		hs.Map[k] = sql.NullString{String:v, Valid:true}
	}

	/* (osm_id,tags,way, ...) */
	target := append(
		make([]interface{},0,len(b.Style)+8),
		osm_id,hs,waybin)

	if b.HasWayArea {
		target = append(target,planar.Area(reproject(g,b.Proj)))
	}

	for _,s := range b.Style {
		var targ interface{}
		if r,ok := hs.Map[s.Tag]; ok {
			if strings.HasPrefix(s.DataType,"int") {
				targ,_ = strconv.ParseInt(r.String,0,64)
			} else if strings.HasPrefix(s.DataType,"real") || strings.HasPrefix(s.DataType,"double") {
				targ,_ = strconv.ParseFloat(r.String,64)
			} else {
				targ = r.String
			}
		}
		delete(hs.Map,s.Tag)
		target = append(target,targ)
	}

	stm,err := b.Get(b.Usql)
	if err!=nil { return err }
	if rescount(stm.Exec(target...))<1 {
		stm,err = b.Get(b.Isql)
		if err!=nil { return err }
		_,err = stm.Exec(target...)
		if err!=nil { return err }
	}
	return nil
}
