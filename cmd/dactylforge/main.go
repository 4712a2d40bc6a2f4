// Command dactylforge generates OpenSCAD programs for a parametric split
// keyboard case: right case, mirrored left case and a flat bottom plate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openkbd/dactylforge/dactyl"
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/titanous/json5"
)

func main() {
	paramsFile := flag.String("params", "", "JSON5 parameter file overlaying the built-in defaults")
	outDir := flag.String("o", ".", "output directory for .scad files")
	facets := flag.Int("fn", 30, "circle facet count written as $fn")
	flag.Parse()

	p := dactyl.DefaultParams()
	if *paramsFile != "" {
		raw, err := os.ReadFile(*paramsFile)
		if err != nil {
			fmt.Println("error reading parameter file:", err)
			os.Exit(1)
		}
		if err := json5.Unmarshal(raw, &p); err != nil {
			fmt.Println("error parsing parameter file:", err)
			os.Exit(1)
		}
	}

	start := time.Now()
	out, err := dactyl.Generate(p)
	if err != nil {
		fmt.Println("error generating case:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	prog := scadbuild.NewDefaultProgrammer()
	prog.SetFacets(*facets)
	write := func(name string, s scadbuild.Shape3D) {
		fp, err := os.Create(filepath.Join(*outDir, name))
		if err != nil {
			fmt.Println("error creating file:", err)
			os.Exit(1)
		}
		defer fp.Close()
		w := bufio.NewWriter(fp)
		n, err := prog.WriteProgram(w, s)
		if err == nil {
			err = w.Flush()
		}
		if err != nil {
			fmt.Println("error writing", name+":", err)
			os.Exit(1)
		}
		fmt.Println("wrote", name, "("+fmt.Sprint(n), "bytes)")
	}
	write("right.scad", out.RightCase)
	write("left.scad", out.LeftCase)
	write("plate.scad", out.BottomPlate)
	fmt.Println("model built in", elapsed)
}
