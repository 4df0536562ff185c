package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/shrink/media"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(
			os.Stderr,
			"Print the framing of a compressed file.\nUsage: %s compressed-file\n",
			os.Args[0])
		os.Exit(1)
	}

	sourceFilePath := os.Args[1]
	data, err := os.ReadFile(sourceFilePath)
	if err != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, err)
		os.Exit(1)
	}

	switch {
	case strings.HasSuffix(sourceFilePath, ".bin"):
		err = describeHuffman(data)
	case strings.HasSuffix(sourceFilePath, ".rle"):
		err = describeRLE(filepath.Base(sourceFilePath), data)
	default:
		err = fmt.Errorf("don't know how to inspect %q", sourceFilePath)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error inspecting file: %s\n", err)
		os.Exit(2)
	}
}

func describeHuffman(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf(
			"file is %d bytes; expected a padding byte and at least one data byte",
			len(data))
	}
	padding := int(data[0])
	if padding < 1 || padding > 8 {
		return fmt.Errorf("padding byte is %d, expected 1-8", padding)
	}

	codeBits := 8*(len(data)-1) - padding
	fmt.Printf("Huffman stream: %d bytes, %d code bits, %d padding bits\n",
		len(data), codeBits, padding)
	last := data[len(data)-1]
	if padding == 8 && last != 0 || padding < 8 && last&(1<<padding-1) != 0 {
		return fmt.Errorf("padding bits at the end of the stream aren't zero")
	}
	return nil
}

func describeRLE(name string, data []byte) error {
	counts, err := media.ScanVideoFrames(data)
	if err == nil && len(counts) > 0 {
		total := 0
		for _, count := range counts {
			total += count
		}
		fmt.Printf("%s: %d bytes; if video, %d frames with %d tokens in total\n",
			name, len(data), len(counts), total)
	}

	if len(data)%media.AudioTokenSize == 0 {
		fmt.Printf("%s: if audio, %d tokens\n", name, len(data)/media.AudioTokenSize)
	}
	if len(data)%2 == 0 {
		fmt.Printf("%s: if an image, %d tokens\n", name, len(data)/2)
	}
	return nil
}
