// Command gen-wav generates sine wave WAV files with INFO metadata,
// useful as parser test fixtures.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-wav", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 1, "length in seconds of output file")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")
	comment := flagSet.String("comment", "", "ICMT comment to embed")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %g sec sine wav at %g hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	enc := wav.NewEncoder(file, *rate, 16, 1, 1)
	enc.Metadata = &wav.Metadata{
		Software: "gen-wav",
		Comments: *comment,
	}

	numSamples := int(float64(*rate) * *length)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: *rate},
		SourceBitDepth: 16,
		Data:           make([]int, numSamples),
	}

	for i := range buf.Data {
		fv := math.Sin(float64(i) / float64(*rate) * *frequency * 2 * math.Pi)
		buf.Data[i] = int(fv * 0.8 * math.MaxInt16)
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}
