package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/kriticalflare/qoig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/image/bmp"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	plainQOI    bool
	clenIndex   int
	longruns    bool
	longindex   bool
	rawblocks   bool
	searchcache bool
	verbose     bool
	logFile     string
	format      string
)

func buildLogger() *qoig.Logger {
	if !verbose && logFile == "" {
		return qoig.NewNopLogger()
	}
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	var sink zapcore.WriteSyncer
	if logFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{Filename: logFile, MaxSize: 10, MaxBackups: 3})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	return qoig.NewLogger(zap.New(core))
}

func encodeConfigFromFlags() qoig.EncodeConfig {
	if plainQOI {
		return qoig.PlainQOIConfig()
	}
	return qoig.EncodeConfig{
		ClenIndex:   clenIndex,
		Longruns:    longruns,
		Longindex:   longindex,
		Rawblocks:   rawblocks,
		Searchcache: searchcache,
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qoig",
		Short: "Encode, decode and tune QOIG images",
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&verbose, "verbose", false, "emit debug-level progress logging")
	pf.StringVar(&logFile, "log-file", "", "write structured logs to this rotating file instead of stderr")

	root.AddCommand(encodeCmd(), decodeCmd(), tuneCmd())
	return root
}

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input> <output.qoig>",
		Short: "Encode a PNG or BMP image to QOIG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			img, _, err := image.Decode(in)
			if err != nil {
				return fmt.Errorf("decoding source image: %w", err)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()

			log := buildLogger()
			cfg := encodeConfigFromFlags()
			count, err := qoig.ImageEncode(out, img, cfg)
			if err != nil {
				return fmt.Errorf("encoding: %w", err)
			}
			log.encoded(args[1], img.Bounds().Dx()*img.Bounds().Dy()*4, count)
			return nil
		},
	}
	addEncodeFlags(cmd.Flags())
	return cmd
}

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input.qoig> <output>",
		Short: "Decode a QOIG stream, writing PNG or BMP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			img, err := qoig.ImageDecode(in)
			if err != nil {
				return fmt.Errorf("decoding: %w", err)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()

			log := buildLogger()
			if format == "bmp" {
				err = bmp.Encode(out, img)
			} else {
				err = encodePNG(out, img)
			}
			if err != nil {
				return fmt.Errorf("writing output image: %w", err)
			}
			b := img.Bounds()
			log.decoded(args[0], uint32(b.Dx()), uint32(b.Dy()))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "png", "output raster format: png or bmp")
	return cmd
}

func tuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune <input>",
		Short: "Probe clen_index values and report the smallest simulated size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			img, _, err := image.Decode(in)
			if err != nil {
				return fmt.Errorf("decoding source image: %w", err)
			}
			n := imageToNRGBAForCLI(img)
			b := n.Bounds()
			width, height := uint32(b.Dx()), uint32(b.Dy())

			log := buildLogger()
			base := qoig.EncodeConfig{ClenIndex: clenIndex, Longruns: longruns, Longindex: longindex, Rawblocks: rawblocks, Searchcache: searchcache}
			rewind := func() qoig.RowSource {
				return qoig.NewSliceRowSource(n.Pix, width, height)
			}
			best, count := qoig.Tune(rewind, width, height, 4, base, len(n.Pix), log)
			fmt.Printf("best clen_index=%d probe_bytes=%d\n", best, count)
			return nil
		},
	}
	addEncodeFlags(cmd.Flags())
	return cmd
}

func encodePNG(w *os.File, img image.Image) error {
	return png.Encode(w, img)
}

func imageToNRGBAForCLI(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func addEncodeFlags(f *pflag.FlagSet) {
	f.BoolVar(&plainQOI, "plain-qoi", false, "reproduce baseline QOI output byte-for-byte")
	f.IntVar(&clenIndex, "clen-index", 0, "index into the clen_index cache-size table (0..30)")
	f.BoolVar(&longruns, "longruns", false, "enable the long-run escape extension")
	f.BoolVar(&longindex, "longindex", false, "enable the 256-slot overflow caches")
	f.BoolVar(&rawblocks, "rawblocks", false, "enable OP_RGBRUN raw-pixel block buffering")
	f.BoolVar(&searchcache, "searchcache", false, "scan the whole near region and long-near cache instead of only the pixel's hashed slot")
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
