package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lmavr/go-whitted-raytracer/pkg/core"
)

// Image is a row-major grid of RGB8 pixels. Out-of-range access is a
// programmer error and panics.
type Image struct {
	width  int
	height int
	pix    []core.Color
}

// NewImage creates a black image of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pix:    make([]core.Color, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// At returns the pixel at (row, col)
func (img *Image) At(row, col int) core.Color {
	img.checkBounds(row, col)
	return img.pix[row*img.width+col]
}

// Set writes the pixel at (row, col)
func (img *Image) Set(row, col int, c core.Color) {
	img.checkBounds(row, col)
	img.pix[row*img.width+col] = c
}

func (img *Image) checkBounds(row, col int) {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		panic(fmt.Sprintf("image access out of bounds: (%d, %d) in %dx%d", row, col, img.width, img.height))
	}
}

// ToRGBA converts the buffer to a standard library image for PNG output
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			c := img.pix[row*img.width+col]
			out.SetRGBA(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out
}
