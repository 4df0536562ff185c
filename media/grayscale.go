package media

import (
	"image"
	"image/color"
)

// Grayscale converts an image to 8-bit grayscale. Images that are already
// *image.Gray are returned unchanged.
//
// Alpha is ignored. The luma weights are the ITU-R 601-2 ones, computed in
// 16.16 fixed point:
//
//	L = (R*19595 + G*38470 + B*7471 + 0x8000) >> 16
func Grayscale(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[x-bounds.Min.X] = luma(pixel.R, pixel.G, pixel.B)
		}
	}
	return gray
}

func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}

// Flatten returns the pixels of a grayscale image in row-major order, without
// any stride padding.
func Flatten(gray *image.Gray) []uint8 {
	bounds := gray.Bounds()
	width := bounds.Dx()
	samples := make([]uint8, 0, width*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		start := gray.PixOffset(bounds.Min.X, y)
		samples = append(samples, gray.Pix[start:start+width]...)
	}
	return samples
}
