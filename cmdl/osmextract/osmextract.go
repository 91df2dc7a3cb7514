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

import "context"
import "encoding/json"
import "flag"
import "io"
import "os"
import "log"
import "time"
import "github.com/couchbase/go-slab"
import "github.com/paulmach/orb"
import "github.com/paulmach/orb/geojson"
import "github.com/paulmach/orb/simplify"
import "github.com/paulmach/osm"
import "github.com/paulmach/osm/osmpbf"
import "github.com/paulmach/osm/osmxml"
import "github.com/Mashin6/orthogonalize-polygon/nodecache"
import "github.com/Mashin6/orthogonalize-polygon/ortho"
import "github.com/Mashin6/orthogonalize-polygon/osmx"
import "github.com/Mashin6/orthogonalize-polygon/projection"
import "github.com/Mashin6/orthogonalize-polygon/restarter"
import "github.com/Mashin6/orthogonalize-polygon/sink"
import "github.com/Mashin6/orthogonalize-polygon/store"
import "github.com/Mashin6/orthogonalize-polygon/style"

var help bool

var file,checkfile,stylefile string
var tempdir string
var cache int
var use_arc bool

var outfile string
var dburl,table_name string

var tolerance float64
var skew,maxchange float64

var is_pbf bool
var is_latlon, is_pseudomerc, is_truemerc bool

var rotproj = projection.WebMercator

var intervall string

func init() {
	flag.BoolVar(&help,"help",false,"Help!")
	flag.StringVar(&file,"file","","osm data file (will use STDIN if not specified)")
	flag.StringVar(&checkfile,"cont","","continuation memoization file")
	flag.StringVar(&stylefile,"style","","column style file (built-in building style if not specified)")
	flag.StringVar(&tempdir,"temp","","node-location spill directory (memory only if not specified)")
	flag.IntVar(&cache,"cache",128,"number of megabytes of node cache")
	flag.BoolVar(&use_arc,"arc",false,"use the slab-arena ARC node cache instead of freecache")

	flag.StringVar(&outfile,"out","","output GeoJSON file (will use STDOUT if not specified)")
	flag.StringVar(&dburl,"dburl","","DB-Connection description; write to PostGIS instead of a file")
	flag.StringVar(&table_name,"table","building_polygon","PostGIS table name")

	flag.Float64Var(&tolerance,"simplify",0.000005,"Douglas-Peucker tolerance in degrees; 0 disables")
	flag.Float64Var(&skew,"skew",15,"skewed-wall tolerance around 45 degrees")
	flag.Float64Var(&maxchange,"maxchange",15,"hysteresis band for direction changes")
	flag.StringVar(&intervall,"intervall","1s","Logging intervall")

	flag.BoolVar(&is_pbf,"pbf",false,".pbf data files")
	flag.BoolVar(&is_latlon,"l",false,"Rotation CRS = Latitude / longitude; SRID = 4326")
	flag.BoolVar(&is_pseudomerc,"m",false,"Rotation CRS = Pseudo-Mercator; SRID = 900913 (default)")
	flag.BoolVar(&is_truemerc,"M",false,"Rotation CRS = WGS84 Mercator; SRID = 3395")
}

var cartostyle style.Style
var intervall_raw = time.Second

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
	if d,err := time.ParseDuration(intervall); err==nil { intervall_raw = d }
}

var background = context.Background()

func buildCache() nodecache.Cache {
	if cache<16 { cache = 16 }
	if use_arc {
		arena := slab.NewArena(24,1<<20,2,nil)
		/* 16-byte payloads plus bookkeeping; budget ~64 bytes an entry. */
		entries := (cache<<20)/64
		return nodecache.NewARC(arena,entries,entries/2)
	}
	return nodecache.NewFree(cache<<20)
}

func main() {
	flag.Parse()
	if help { flag.PrintDefaults(); return }
	prepare()

	var scanner osm.Scanner
	var src io.Reader

	src = os.Stdin
	if file!="" {
		f,err := os.Open(file)
		if err!=nil {
			log.Fatalf("open(%s): %v",file,err)
		}
		defer f.Close()
		src = f
	}

	switch {
	case is_pbf:
		scanner = osmpbf.New(background,src,16)
	default:
		scanner = osmxml.New(background,src)
	}
	defer scanner.Close()

	var commit restarter.Scanner
	if checkfile!="" {
		sca2,err := restarter.Restartable(checkfile,scanner)
		if err!=nil {
			log.Fatalf("cannot open checkpoint: %v",err)
		}
		scanner = sca2
		commit = sca2
	}

	var spill *store.Locations
	if tempdir!="" {
		var err error
		spill,err = store.Open(tempdir)
		if err!=nil {
			log.Fatalf("open node store(%s): %v",tempdir,err)
		}
		defer func() {
			spill.Close()
			os.RemoveAll(tempdir)
		}()
	}

	ext := osmx.New(buildCache(),spill,cartostyle)

	ogr := ortho.Orthogonalizer{
		MaxAngleChange: maxchange,
		SkewTolerance: skew,
		Proj: rotproj,
	}

	tck := time.Tick(intervall_raw)

	var builds []*osmx.Building
	for scanner.Scan() {
		o := scanner.Object()
		b,err := ext.Add(o)
		if err!=nil {
			log.Println(err)
		} else if b!=nil {
			builds = append(builds,b)
		}
		select {
		case <- tck:
			log.Printf("Nodes(%d) Ways(%d) Relations(%d) Buildings(%d)\n",ext.Nodes,ext.Ways,ext.Relations,len(builds))
		default:
		}
	}
	if err := scanner.Err(); err!=nil {
		log.Printf("Scan ended prematurely due to: %v",err)
	}
	log.Printf("Nodes(%d) Ways(%d) Relations(%d) Buildings(%d)\n",ext.Nodes,ext.Ways,ext.Relations,len(builds))

	for _,b := range builds {
		g := b.Geometry
		if tolerance>0 {
			g = simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(g))
		}
		ng,err := ogr.Geometry(g)
		if err!=nil {
			/* Keep the raw footprint for this building. */
			log.Printf("building %d: %v",b.ID,err)
			continue
		}
		b.Geometry = ng
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
		for _,b := range builds {
			if err := bdr.Insert(b.ID,b.Tags,b.Geometry); err!=nil {
				log.Printf("insert building %d: %v",b.ID,err)
			}
		}
		if commit!=nil { commit.Commit() }
		return
	}

	fc := geojson.NewFeatureCollection()
	for _,b := range builds {
		f := geojson.NewFeature(b.Geometry)
		f.ID = b.ID
		f.Properties = make(geojson.Properties,len(b.Tags)+2)
		f.Properties["osm_id"] = b.ID
		f.Properties["osm_type"] = b.OsmType
		for k,v := range b.Tags { f.Properties[k] = v }
		fc.Append(f)
	}

	out,err := json.Marshal(fc)
	if err!=nil {
		log.Fatalf("marshal GeoJSON: %v",err)
	}
	if outfile=="" {
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
	} else if err := os.WriteFile(outfile,out,0666); err!=nil {
		log.Fatalf("write(%s): %v",outfile,err)
	}
	if commit!=nil { commit.Commit() }
}
