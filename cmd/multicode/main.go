// Command multicode is a thin CLI wrapper around the multicode package: it
// exercises Encode and Decode from the shell and contains no codec logic of
// its own.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/tacitbyte/multicode"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  multicode encode --sym N --hex <hex bytes>")
	fmt.Fprintln(os.Stderr, "  multicode decode --sym N --len N <code string>")
}

func runEncode(args []string) {
	fs := pflag.NewFlagSet("encode", pflag.ExitOnError)
	sym := fs.IntP("sym", "s", 8, "number of Reed-Solomon check symbols")
	hexData := fs.StringP("hex", "x", "", "payload bytes, hex encoded")
	fs.Parse(args)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	if *hexData == "" {
		logger.Fatal("missing required flag", "flag", "--hex")
	}
	data, err := hex.DecodeString(*hexData)
	if err != nil {
		logger.Fatal("invalid hex payload", "err", err)
	}

	code := multicode.Encode(data, *sym)
	fmt.Println(code)
	logger.Info("encoded", "bytes", len(data), "sym", *sym, "chars", len(code))
}

func runDecode(args []string) {
	fs := pflag.NewFlagSet("decode", pflag.ExitOnError)
	sym := fs.IntP("sym", "s", 8, "number of Reed-Solomon check symbols")
	length := fs.IntP("len", "l", 0, "original payload length in bytes")
	fs.Parse(args)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	if fs.NArg() < 1 {
		logger.Fatal("missing code argument")
	}
	if *length <= 0 {
		logger.Fatal("missing required flag", "flag", "-len")
	}

	got := multicode.Decode(fs.Arg(0), *length, *sym)
	if got == nil {
		logger.Error("decode failed", "reason", "unrecoverable input")
		os.Exit(1)
	}

	fmt.Println(hex.EncodeToString(got))
	logger.Info("decoded", "bytes", len(got), "sym", *sym)
}
