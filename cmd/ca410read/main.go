package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/colorimeter"
	"github.com/kpfaulkner/gamutcheck/measurement"
	log "github.com/sirupsen/logrus"
)

// Captures R, G, B and W readings from a CA-410, prompting for each patch,
// and writes them as a measurement CSV.
func main() {
	port := flag.String("port", "/dev/ttyUSB0", "colorimeter serial port")
	outfile := flag.String("o", "", "output CSV file (stdout if empty)")
	single := flag.Bool("single", false, "take one reading and print it")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	serial, err := colorimeter.Open(*port)
	if err != nil {
		log.Fatalf("Error opening %s: %v", *port, err)
	}
	defer serial.Close()
	ca := colorimeter.NewCA410(serial)

	if *single {
		m, err := ca.Measure()
		if err != nil {
			log.Fatalf("Error measuring: %v", err)
		}
		fmt.Printf("xyY color space measurements:\n")
		fmt.Printf("x: %v\n", m.X)
		fmt.Printf("y: %v\n", m.Y)
		fmt.Printf("Y: %v cd/m²\n", m.Luminance)
		if m.HasCCT {
			fmt.Printf("T: %v K duv: %v\n", m.CCT, m.Duv)
		}
		if xy, err := color.NewValidCIEXY(color.White, m.X, m.Y); err == nil {
			fmt.Printf("swatch: %s\n", color.SwatchHex(xy, m.Luminance, 0))
		}
		return
	}

	stdin := bufio.NewReader(os.Stdin)
	readings := make([]color.Reading, 0, len(color.Channels))
	for _, c := range color.Channels {
		fmt.Fprintf(os.Stderr, "display the %s patch and press enter\n", c)
		if _, err := stdin.ReadString('\n'); err != nil {
			log.Fatalf("Error reading input: %v", err)
		}
		m, err := ca.Measure()
		if err != nil {
			log.Fatalf("Error measuring %s: %v", c, err)
		}
		r, err := m.Reading(c)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		readings = append(readings, r)
	}

	out := os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			log.Fatalf("Error creating %s: %v", *outfile, err)
		}
		defer f.Close()
		out = f
	}
	if err := measurement.WriteCSV(out, readings); err != nil {
		log.Fatalf("Error writing CSV: %v", err)
	}
}
