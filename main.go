package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"github.com/inkwell-blog/inkwell/sitefs"
	"github.com/inkwell-blog/inkwell/web"
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root folder of the site content.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the page cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long rendered pages stay cached.")
		fExport            = flag.String("export", "", "Write a static copy of the site to this folder and exit.")
	)
	flag.Parse()
	flagenv.Parse()

	// Create the virtual site file system
	vfs, err := sitefs.New(os.DirFS(*fRoot))
	if err != nil {
		log.Printf("Cannot open site %q: %s", *fRoot, err)
		os.Exit(1)
	}
	cfg := vfs.Config()
	log.Printf("Loaded site %q", cfg.Title)

	// Static export mode
	if *fExport != "" {
		if err := export(vfs, *fExport); err != nil {
			log.Printf("Export failed: %s", err)
			os.Exit(2)
		}
		log.Printf("Exported site to %q", *fExport)
		return
	}

	// Setup groupcache (with no peers) and wrap the site in the page cache
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
	cachedFS := cachefs.New(vfs, &cachefs.Config{GroupName: "pages", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})

	// Build the handler pipeline
	handler := web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.ErrorHandler(
					http.FileServer(
						http.FS(cachedFS),
					),
					cachedFS,
				),
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)
	log.Print("Created handlers")

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handler,
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Print("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
