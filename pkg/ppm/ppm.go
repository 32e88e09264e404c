// Package ppm writes image buffers as ASCII PPM (P3).
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lmavr/go-whitted-raytracer/pkg/renderer"
)

// Write emits the image as ASCII PPM: header, then rows top to bottom
// with space-separated decimal channels.
func Write(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height())
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			c := img.At(row, col)
			fmt.Fprintf(bw, "%d %d %d ", c.R, c.G, c.B)
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ppm: %w", err)
	}
	return nil
}

// Save writes the image to a PPM file
func Save(filename string, img *renderer.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	if err := Write(f, img); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	return nil
}
