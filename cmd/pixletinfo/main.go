/*
DESCRIPTION
  pixletinfo is a standalone command that decodes a single Pixlet packet
  file, prints the decoded frame's parameters, and optionally writes a PNG
  preview of the Y plane.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pixletinfo is a standalone command that decodes a single Pixlet
// packet file and prints its frame parameters.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-pixlet/pixlet/codec/pixlet"
)

func main() {
	inPath := flag.String("path", "", "path to a Pixlet packet file")
	outPath := flag.String("png", "", "optional path to write a PNG preview of the luma plane")
	previewWidth := flag.Int("preview-width", 0, "optional preview width in pixels; 0 writes the plane at full resolution")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("pixletinfo: -path is required")
	}

	packet, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("pixletinfo: could not read %s: %v", *inPath, err)
	}

	dec := pixlet.NewDecoder()
	defer dec.Close()

	frame, err := dec.Decode(packet)
	if err != nil {
		log.Fatalf("pixletinfo: decode failed: %v", err)
	}

	fmt.Printf("width=%d height=%d depth=%d type=%v keyframe=%v colorrange=%v\n",
		frame.Width, frame.Height, frame.Depth, frame.Type, frame.KeyFrame, frame.ColorRange)
	fmt.Printf("Y  %dx%d stride=%d\n", frame.Y.Width, frame.Y.Height, frame.Y.Stride)
	fmt.Printf("U  %dx%d stride=%d\n", frame.U.Width, frame.U.Height, frame.U.Stride)
	fmt.Printf("V  %dx%d stride=%d\n", frame.V.Width, frame.V.Height, frame.V.Stride)

	if *outPath == "" {
		return
	}

	if err := writePreview(frame, *outPath, *previewWidth); err != nil {
		log.Fatalf("pixletinfo: writing preview: %v", err)
	}
}

// writePreview renders the decoded frame's luma plane as a grayscale PNG,
// optionally downscaled to width previewWidth (preserving aspect ratio).
func writePreview(frame *pixlet.Frame, path string, previewWidth int) error {
	src := image.NewGray16(image.Rect(0, 0, frame.Y.Width, frame.Y.Height))
	for y := 0; y < frame.Y.Height; y++ {
		for x := 0; x < frame.Y.Width; x++ {
			v := frame.Y.Samples[y*frame.Y.Stride+x]
			src.SetGray16(x, y, color.Gray16{Y: v})
		}
	}

	img := image.Image(src)
	if previewWidth > 0 && previewWidth < frame.Y.Width {
		previewHeight := frame.Y.Height * previewWidth / frame.Y.Width
		dst := image.NewGray16(image.Rect(0, 0, previewWidth, previewHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
