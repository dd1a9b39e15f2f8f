package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/andvaranaut/config"
	"github.com/lixenwraith/andvaranaut/engine"
)

const (
	logDir      = "logs"
	logFileName = "andvaranaut.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging configures log output based on the debug flag. With
// debug on, logs go to a rotating file; otherwise logging is
// disabled entirely so nothing ever writes across the live screen.
// Returns the log file handle (or nil) to close when done
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create logs directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate by rename once the file outgrows its budget
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		timestamp := time.Now().Format("2006-01-02-15-04-05")
		rotatedName := filepath.Join(logDir, fmt.Sprintf("andvaranaut-%s.log", timestamp))
		if err := os.Rename(logPath, rotatedName); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== Andvaranaut started ===")

	return logFile
}

func main() {
	configPath := flag.String("config", "andvaranaut.yaml", "Path to the yaml configuration")
	fps := flag.Int("fps", 0, "Frame rate cap, overrides the configuration")
	threads := flag.Int("threads", 0, "Raster worker count, overrides the configuration")
	zone := flag.String("zone", "", "Starting zone, overrides the configuration")
	mute := flag.Bool("mute", false, "Disable audio")
	debug := flag.Bool("debug", false, "Enable debug logging to file")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// The single positional argument is the horizontal resolution.
	// 128 selects the headless benchmark mode
	if flag.NArg() > 0 {
		xres, err := strconv.Atoi(flag.Arg(0))
		if err != nil || xres < 64 {
			fmt.Fprintf(os.Stderr, "Bad resolution %q: want an integer of at least 64\n", flag.Arg(0))
			os.Exit(1)
		}
		cfg.XRes = xres
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *threads > 0 {
		cfg.Threads = *threads
	}
	if *zone != "" {
		cfg.Zone = *zone
	}
	if *mute {
		cfg.Audio = false
	}

	benchmark := cfg.XRes == 128

	var screen tcell.Screen
	if !benchmark {
		screen, err = tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
			os.Exit(1)
		}
		if err := screen.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
			os.Exit(1)
		}
		defer screen.Fini()
	}

	game, err := engine.New(cfg, screen)
	if err != nil {
		if screen != nil {
			screen.Fini()
		}
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := game.Run(); err != nil {
		if screen != nil {
			screen.Fini()
		}
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}

	if benchmark {
		elapsed := time.Since(start)
		fmt.Printf("rendered %d frames in %v (%.1f fps)\n",
			game.Frames(), elapsed, float64(game.Frames())/elapsed.Seconds())
	}
}
