package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"

	"lustrio/models"
	"lustrio/services/hotel"
)

var (
	sampleLocations = []string{"Cox's Bazar", "Sylhet", "Bandarban", "Dhaka", "Sreemangal"}
	sampleKinds     = []string{"Resort", "Lodge", "Inn", "Suites"}
)

// sampleHotel builds the n-th demo hotel with a generated placeholder image.
func sampleHotel(rng *rand.Rand, n int) (models.HotelInput, hotel.ImageUpload, error) {
	loc := sampleLocations[rng.Intn(len(sampleLocations))]
	kind := sampleKinds[rng.Intn(len(sampleKinds))]

	in := models.HotelInput{
		Name:        fmt.Sprintf("%s %s %d", loc, kind, n),
		Price:       float64(40 + rng.Intn(26)*10),
		Location:    loc,
		Description: fmt.Sprintf("A %s in %s.", kind, loc),
	}

	img, err := placeholderPNG(color.RGBA{
		R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255,
	})
	if err != nil {
		return in, hotel.ImageUpload{}, err
	}
	return in, hotel.ImageUpload{
		Filename:    fmt.Sprintf("hotel-%d.png", n),
		ContentType: "image/png",
		Data:        img,
	}, nil
}

func placeholderPNG(c color.Color) ([]byte, error) {
	const w, h = 64, 40
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
