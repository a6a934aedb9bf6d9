// actool compresses and decompresses single files using static arithmetic
// coding.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mewkiz/arcode/coder"
	"github.com/mewkiz/arcode/container"
	"github.com/mewkiz/arcode/internal/arcerr"
	"github.com/mewkiz/pkg/errutil"
	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
)

var (
	flagEncode string
	flagDecode string
	flagLow    string
	flagHigh   string
	flagForce  bool
)

func init() {
	flag.StringVar(&flagEncode, "e", "", "encode the given file")
	flag.StringVar(&flagEncode, "encode", "", "encode the given file")
	flag.StringVar(&flagDecode, "d", "", "decode the given .ac file")
	flag.StringVar(&flagDecode, "decode", "", "decode the given .ac file")
	flag.StringVar(&flagLow, "l", "", "override the initial low register (must be 2^k-1)")
	flag.StringVar(&flagLow, "low", "", "override the initial low register (must be 2^k-1)")
	flag.StringVar(&flagHigh, "h", "", "override the initial high register (must be 2^k-1)")
	flag.StringVar(&flagHigh, "high", "", "override the initial high register (must be 2^k-1)")
	flag.BoolVar(&flagForce, "f", false, "force overwrite of the output file")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: actool -e|--encode PATH | -d|--decode PATH.ac [-l LOW] [-h HIGH]")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	if flagEncode == "" && flagDecode == "" {
		usage()
		os.Exit(1)
	}

	params, err := parseParams(flagLow, flagHigh)
	if err != nil {
		exitWith(err)
	}

	switch {
	case flagEncode != "":
		if err := encode(flagEncode, params, flagForce); err != nil {
			exitWith(err)
		}
	case flagDecode != "":
		if err := decode(flagDecode, params, flagForce); err != nil {
			exitWith(err)
		}
	}
}

// checkOverwrite refuses to clobber an existing outPath unless force is set.
func checkOverwrite(outPath string, force bool) error {
	if force {
		return nil
	}
	exists, err := osutil.Exists(outPath)
	if err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	if exists {
		return arcerr.Newf(arcerr.Io, "output file %q already exists; use -f to force overwrite", outPath)
	}
	return nil
}

// parseParams resolves the -l/-h overrides (if any) into coder.Params.
func parseParams(low, high string) (coder.Params, error) {
	if low == "" && high == "" {
		return coder.DefaultParams(), nil
	}
	lowV, highV := coder.DefaultParams().Low0, coder.DefaultParams().High0
	if low != "" {
		v, err := strconv.ParseUint(low, 10, 64)
		if err != nil {
			return coder.Params{}, errors.Wrapf(err, "invalid -l value %q", low)
		}
		lowV = v
	}
	if high != "" {
		v, err := strconv.ParseUint(high, 10, 64)
		if err != nil {
			return coder.Params{}, errors.Wrapf(err, "invalid -h value %q", high)
		}
		highV = v
	}
	return coder.NewParams(lowV, highV)
}

// encode reads path and writes path+".ac".
func encode(path string, params coder.Params, force bool) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}

	outPath := path + ".ac"
	if err := checkOverwrite(outPath, force); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	defer f.Close()

	if err := container.Encode(f, data, params); err != nil {
		return err
	}
	return nil
}

// decode reads path (which must end in .ac) and writes the ".ac" suffix
// stripped with ".dec" appended.
func decode(path string, params coder.Params, force bool) error {
	if !strings.HasSuffix(path, ".ac") {
		return arcerr.Newf(arcerr.BadContainer, "input %q does not have a .ac extension", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	defer f.Close()

	data, err := container.Decode(f, params)
	if err != nil {
		return err
	}

	outPath := pathutil.TrimExt(path) + ".dec"
	if err := checkOverwrite(outPath, force); err != nil {
		return err
	}
	if err := ioutil.WriteFile(outPath, data, 0644); err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	return nil
}

// exitWith maps a core error kind to a process exit code, printing a stack
// trace first.
func exitWith(err error) {
	log.Printf("%+v", err)
	code := 1
	if e, ok := err.(*arcerr.Error); ok {
		switch e.Kind {
		case arcerr.Io:
			code = 2
		case arcerr.InputTooLarge:
			code = 3
		case arcerr.BadPrecision:
			code = 4
		case arcerr.UnknownSymbol, arcerr.ValueOutOfRange:
			code = 5
		case arcerr.Corrupt:
			code = 6
		case arcerr.BadContainer:
			code = 7
		}
	}
	os.Exit(code)
}
