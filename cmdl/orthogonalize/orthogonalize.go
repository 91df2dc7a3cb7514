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

package main

import (
	"database/sql"
	_ "github.com/lib/pq"
)

import "encoding/json"
import "flag"
import "io"
import "os"
import "log"
import "github.com/paulmach/orb"
import "github.com/paulmach/orb/geojson"
import "github.com/paulmach/orb/simplify"
import "github.com/Mashin6/orthogonalize-polygon/ortho"
import "github.com/Mashin6/orthogonalize-polygon/projection"
import "github.com/Mashin6/orthogonalize-polygon/sink"
import "github.com/Mashin6/orthogonalize-polygon/style"

var help bool

var infile,outfile string
var tolerance float64
var skew,maxchange float64

var dburl,table_name,stylefile string

var is_latlon, is_pseudomerc, is_truemerc bool

var rotproj = projection.WebMercator

func init() {
	flag.BoolVar(&help,"help",false,"Help!")
	flag.StringVar(&infile,"in","","input GeoJSON file (will use STDIN if not specified)")
	flag.StringVar(&outfile,"out","","output GeoJSON file (will use STDOUT if not specified)")
	flag.Float64Var(&tolerance,"simplify",0.000005,"Douglas-Peucker tolerance in degrees; 0 disables")
	flag.Float64Var(&skew,"skew",15,"skewed-wall tolerance around 45 degrees")
	flag.Float64Var(&maxchange,"maxchange",15,"hysteresis band for direction changes")
	flag.StringVar(&dburl,"dburl","","DB-Connection description; write to PostGIS instead of a file")
	flag.StringVar(&table_name,"table","building_polygon","PostGIS table name")
	flag.StringVar(&stylefile,"style","","column style file (built-in building style if not specified)")

	flag.BoolVar(&is_latlon,"l",false,"Rotation CRS = Latitude / longitude; SRID = 4326")
	flag.BoolVar(&is_pseudomerc,"m",false,"Rotation CRS = Pseudo-Mercator; SRID = 900913 (default)")
	flag.BoolVar(&is_truemerc,"M",false,"Rotation CRS = WGS84 Mercator; SRID = 3395")
}

var cartostyle style.Style

func prepare() {
	switch {
	case is_latlon     : rotproj = projection.LatLon
	case is_pseudomerc : rotproj = projection.PseudoMercator
	case is_truemerc   : rotproj = projection.WGS84Mercator
	}
	cartostyle = style.Default()
	if stylefile!="" {
		sf,err := os.Open(stylefile)
		if err!=nil {
			log.Fatalf("open(%s): %v",stylefile,err)
		}
		defer sf.Close()
		cartostyle = style.Load(sf)
	}
}

func tagsOf(f *geojson.Feature) map[string]string {
	tags := make(map[string]string,len(f.Properties))
	for k,v := range f.Properties {
		if s,ok := v.(string); ok { tags[k] = s }
	}
	return tags
}

func featureID(f *geojson.Feature, i int) int64 {
	switch v := f.ID.(type) {
	case float64: return int64(v)
	case int64: return v
	}
	if v,ok := f.Properties["osm_id"].(float64); ok { return int64(v) }
	return int64(i)
}

func main() {
	flag.Parse()
	if help { flag.PrintDefaults(); return }
	prepare()

	var src io.Reader = os.Stdin
	if infile!="" {
		f,err := os.Open(infile)
		if err!=nil {
			log.Fatalf("open(%s): %v",infile,err)
		}
		defer f.Close()
		src = f
	}

	raw,err := io.ReadAll(src)
	if err!=nil {
		log.Fatalf("read: %v",err)
	}
	fc,err := geojson.UnmarshalFeatureCollection(raw)
	if err!=nil {
		log.Fatalf("parse GeoJSON: %v",err)
	}

	ogr := ortho.Orthogonalizer{
		MaxAngleChange: maxchange,
		SkewTolerance: skew,
		Proj: rotproj,
	}

	errs := 0
	for i,f := range fc.Features {
		var g orb.Geometry = f.Geometry
		if tolerance>0 {
			g = simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(g))
		}
		ng,err := ogr.Geometry(g)
		if err!=nil {
			/* Keep the untouched input geometry for this feature. */
			log.Printf("feature #%d: %v",i,err)
			errs++
			continue
		}
		f.Geometry = ng
	}
	if errs>0 {
		log.Printf("%d of %d features passed through unchanged",errs,len(fc.Features))
	}

	if dburl!="" {
		db,err := sql.Open("postgres",dburl)
		if err!=nil {
			log.Fatalf("cannot connect to DB: %v",err)
		}
		defer db.Close()
		bdr := new(sink.Builder)
		bdr.DB = db
		bdr.Proj = rotproj
		bdr.Init(table_name,cartostyle)
		if err := bdr.TouchTables(); err!=nil {
			log.Fatalf("create table: %v",err)
		}
		for i,f := range fc.Features {
			if err := bdr.Insert(featureID(f,i),tagsOf(f),f.Geometry); err!=nil {
				log.Printf("insert feature #%d: %v",i,err)
			}
		}
		return
	}

	out,err := json.Marshal(fc)
	if err!=nil {
		log.Fatalf("marshal GeoJSON: %v",err)
	}
	if outfile=="" {
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return
	}
	if err := os.WriteFile(outfile,out,0666); err!=nil {
		log.Fatalf("write(%s): %v",outfile,err)
	}
}
