package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/rawhttp"
	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/proto"
	"github.com/indigo-web/rawhttp/internal/uri"
	"gopkg.in/alecthomas/kingpin.v2"
	"k8s.io/klog/v2"
)

var (
	app = kingpin.New("rawhttp", "Parse raw HTTP/1.x messages and print how they are framed.")

	configFile    = app.Flag("config", "Path to the YAML config").Envar("RAWHTTP_CONFIG").String()
	strictLF      = app.Flag("strict-lf", "Reject line terminators without preceding carriage return").Bool()
	noInsertHost  = app.Flag("no-insert-host", "Reject requests without Host header instead of deriving it from the target").Bool()
	strictFraming = app.Flag("strict-framing", "Reject messages with ambiguous body framing").Bool()
	lenientNames  = app.Flag("lenient-names", "Accept header names which aren't valid tokens").Bool()
	eager         = app.Flag("eager", "Read the body and include it into the output").Bool()
	verbosity     = app.Flag("verbosity", "Log verbosity level").Short('v').Default("0").String()

	requestCmd  = app.Command("request", "Parse an HTTP request")
	requestFile = requestCmd.Arg("file", "File containing the request, - for stdin").Required().String()

	responseCmd    = app.Command("response", "Parse an HTTP response")
	responseFile   = responseCmd.Arg("file", "File containing the response, - for stdin").Required().String()
	responseMethod = responseCmd.Flag("method", "Method of the request the response answers to").String()
)

func main() {
	klog.InitFlags(nil)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := flag.Set("v", *verbosity); err != nil {
		klog.Exitln("bad verbosity:", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		klog.Exitln("failed to load config:", err)
	}

	parser := rawhttp.New(cfg)

	var s summary
	switch command {
	case requestCmd.FullCommand():
		s, err = parseRequest(parser, *requestFile)
	case responseCmd.FullCommand():
		s, err = parseResponse(parser, *responseFile, *responseMethod)
	}

	if err != nil {
		klog.Exitln(err)
	}

	out, err := render(s)
	if err != nil {
		klog.Exitln("failed to render the summary:", err)
	}

	fmt.Println(string(out))
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if len(*configFile) > 0 {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}

	if *strictLF {
		cfg.Parser.AllowNewLineWithoutReturn = false
	}

	if *noInsertHost {
		cfg.Parser.InsertHostHeaderIfMissing = false
	}

	if *strictFraming {
		cfg.Parser.RejectAmbiguousFraming = true
	}

	if *lenientNames {
		cfg.Parser.ValidateHeaderNames = false
	}

	return cfg, nil
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func parseRequest(parser *rawhttp.Parser, path string) (summary, error) {
	src, err := open(path)
	if err != nil {
		return summary{}, err
	}

	defer src.Close()

	request, err := parser.ParseRequest(src)
	if err != nil {
		return summary{}, err
	}

	return summarizeRequest(request, *eager)
}

func parseResponse(parser *rawhttp.Parser, path, method string) (summary, error) {
	src, err := open(path)
	if err != nil {
		return summary{}, err
	}

	defer src.Close()

	var request *http.MethodLine
	if len(method) > 0 {
		request = &http.MethodLine{Method: method, URI: placeholderTarget, Version: proto.DefaultVersion}
	}

	response, err := parser.ParseResponse(src, request)
	if err != nil {
		return summary{}, err
	}

	return summarizeResponse(response, *eager)
}

var placeholderTarget, _ = uri.Parse("/")
