package main

import (
	"context"
	"image"
	"testing"

	"github.com/dargueta/shrink/media"
	"github.com/dargueta/shrink/utilities/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeHuffman(t *testing.T) {
	payload, err := huffman.EncodeBytes([]byte("aaaabbc"))
	require.NoError(t, err)
	assert.NoError(t, describeHuffman(payload))

	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"padding byte only", []byte{8}},
		{"padding out of range", []byte{0, 0xff}},
		{"padding too big", []byte{9, 0xff}},
		{"nonzero padding bits", []byte{3, 0xf9}},
		{"nonzero padding byte", []byte{8, 0xaa, 0x01}},
	}
	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				assert.Error(t, describeHuffman(test.Data))
			},
		)
	}
}

func TestDescribeRLE(t *testing.T) {
	frame := image.NewGray(image.Rect(0, 0, 4, 1))
	video, err := media.EncodeVideo(
		context.Background(), []image.Image{frame, frame}, media.VideoOptions{})
	require.NoError(t, err)
	assert.NoError(t, describeRLE("clip_compressed.rle", video.Payload))
}
