package main

import (
	"fmt"
	"log"

	"github.com/ecc1/rocketlst"
)

func main() {
	r := rocketlst.Open()
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	fmt.Printf("version: %s\n", r.Version())
	fmt.Printf("old frequency: %d\n", r.Frequency())
	r.Init(437000000)
	fmt.Printf("new frequency: %d\n", r.Frequency())
	t := r.Telemetry()
	fmt.Printf("uptime: %d s\n", t.Uptime)
	fmt.Printf("supply sense: %d %d\n", t.SupplySense[0], t.SupplySense[1])
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
}
