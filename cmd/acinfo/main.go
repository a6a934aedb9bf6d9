// acinfo prints the trailer and symbol table of an arithmetic-coded
// artifact without performing a full decode.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mewkiz/arcode/model"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: acinfo FILE.ac...")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	for _, path := range flag.Args() {
		if err := info(path); err != nil {
			log.Fatalln(err)
		}
	}
}

const trailerSize = 8 + 1

func info(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if size < trailerSize {
		return fmt.Errorf("%s: file too small to hold a trailer", path)
	}

	if _, err := f.Seek(size-trailerSize, io.SeekStart); err != nil {
		return err
	}
	var l uint64
	var trailingBits byte
	if err := binary.Read(f, binary.LittleEndian, &l); err != nil {
		return err
	}
	if err := binary.Read(f, binary.LittleEndian, &trailingBits); err != nil {
		return err
	}

	if _, err := f.Seek(int64(l), io.SeekStart); err != nil {
		return err
	}
	table, err := model.ReadFrom(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n", path)
	fmt.Printf("  code stream length: %d bytes\n", l)
	fmt.Printf("  trailing bits:      %d\n", trailingBits)
	fmt.Printf("  total symbols:      %d\n", table.Total())
	fmt.Printf("  distinct symbols:   %d\n", table.Len())
	for _, e := range table.Entries() {
		fmt.Printf("    %#02x  count=%-10d [%d, %d)\n", e.Byte, e.Count, e.Lo, e.Hi)
	}
	return nil
}
