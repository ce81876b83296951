// Copyright
// SPDX-License-Identifier: MIT
// pagepad: plain-text word processor: paged TUI editor plus a small document server
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	cfg "pagepad/internal/config"
	"pagepad/internal/export"
	"pagepad/internal/geom"
	"pagepad/internal/httpx"
	"pagepad/internal/importer"
	"pagepad/internal/ports"
	"pagepad/internal/server"
	"pagepad/internal/store"
	"pagepad/internal/textenc"
	"pagepad/internal/tui"
)

const Version = "0.4.0"

const (
	defaultPort     = 3000
	defaultEncoding = "utf-8"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "-v", "--version":
		fmt.Println("pagepad", Version)
		return
	case "serve":
		cmdServe()
	case "edit":
		cmdEdit()
	case "export":
		cmdExport()
	case "config":
		cmdConfig()
	default:
		usage()
	}
}

func usage() {
	fmt.Print(`pagepad ` + Version + `
Plain-text word processor: an editor with A4 page layout plus a document
server the editor syncs against.

USAGE
  pagepad <command> [options]

COMMANDS
  serve        Run the document server (GET/POST /api/content, GET /api/status)
  edit         Open the editor, networked against a server or standalone
  export       Render a text file to .txt / .png without opening the editor
  config       Show or update the settings file (~/.pagepad.json)
  help         Show help (try: pagepad help edit)
  version      Print version

NOTES
  • 'edit' keeps working when the server goes away: the session drops to
    Unlinked and warns before quit until a save succeeds again.
  • Settings defaults can be placed in ~/.pagepad.json (server, export_dir, encoding).
`)
}

func helpTopic(name string) {
	switch name {
	case "serve":
		fmt.Print(`USAGE
  pagepad serve [--file PATH] [--dir PATH] [--port N] [--encoding utf-8|gbk]

DESCRIPTION
  Serves one document. GET /api/content returns {content, title, saved};
  POST persists the body and echoes the stored result. Last write wins.

OPTIONS
  --file PATH      Backing text file. Omitted: starts empty, binds a path
                   under --dir on the first save (from the document title).
  --dir PATH       Directory for lazily bound files (default: .)
  --port N         Listen port (default: 3000; 0 picks a free port)
  --encoding ENC   utf-8 (default) or gbk for the backing file
`)
	case "edit":
		fmt.Print(`USAGE
  pagepad edit [--server URL] [--file PATH] [--encoding utf-8|gbk]
               [--export-dir PATH] [--poll DURATION] [--no-color]

DESCRIPTION
  Opens the editor. With --server the session loads the remote document,
  saves with ctrl+s and polls /api/status in the background. Without it
  the session is standalone: --file seeds the buffer and ctrl+s exports
  a .txt instead of saving remotely.

OPTIONS
  --server URL       Document server base URL (e.g. http://localhost:3000)
  --file PATH        Standalone only: text file to load into the buffer
  --encoding ENC     utf-8 (default) or gbk for --file
  --export-dir PATH  Where ctrl+s (standalone) and ctrl+e write (default: .)
  --poll DURATION    Status poll interval (default: 30s)
  --no-color         Disable styled output
`)
	case "export":
		fmt.Print(`USAGE
  pagepad export --file PATH [--out DIR] [--png] [--zoom Z] [--encoding utf-8|gbk]

DESCRIPTION
  Reads a text file and writes <title>.txt (always) and, with --png, an
  A4-paged PNG rendering at the given zoom.
`)
	case "config":
		fmt.Print(`USAGE
  pagepad config [--server URL] [--export-dir PATH] [--encoding utf-8|gbk]

DESCRIPTION
  With no flags, prints the current settings from ~/.pagepad.json.
  Each flag given updates that setting and writes the file back.
  Settings are defaults only; edit/export flags always override them.
`)
	default:
		usage()
	}
}

/* ---------- commands ---------- */

func cmdServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	file := fs.String("file", "", "backing text file")
	dir := fs.String("dir", ".", "directory for lazily bound files")
	port := fs.Int("port", defaultPort, "listen port (0 picks a free port)")
	encName := fs.String("encoding", defaultEncoding, "utf-8 | gbk")
	_ = fs.Parse(os.Args[2:])

	enc := mustEncoding(*encName)
	if *port == 0 {
		p, err := ports.FindFreePort()
		if err != nil {
			fatalf("no free port: %v", err)
		}
		*port = p
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	st := store.New(*file, *dir, enc)
	srv := server.New(st)

	addr := fmt.Sprintf(":%d", *port)
	log.Info("serving", "addr", addr, "file", st.Path(), "encoding", enc.String())
	err := http.ListenAndServe(addr, srv.Handler())
	if err != nil {
		if strings.Contains(err.Error(), "address already in use") {
			fatalf("port %d is in use; pick another with --port (0 chooses one for you)", *port)
		}
		fatalf("server: %v", err)
	}
}

func cmdEdit() {
	defaults, err := cfg.Load(cfg.DefaultPath())
	if err != nil {
		fatalf("%v", err)
	}

	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	serverURL := fs.String("server", defaults.Server, "document server base URL (empty: standalone)")
	file := fs.String("file", "", "standalone only: text file to load")
	encName := fs.String("encoding", fallback(defaults.Encoding, defaultEncoding), "utf-8 | gbk")
	exportDir := fs.String("export-dir", fallback(defaults.ExportDir, "."), "directory for exports")
	poll := fs.Duration("poll", 30*time.Second, "status poll interval")
	noColor := fs.Bool("no-color", false, "disable styled output")
	_ = fs.Parse(os.Args[2:])

	opts := tui.Options{
		ServerURL: *serverURL,
		ExportDir: *exportDir,
		PollEvery: *poll,
		NoColor:   *noColor,
	}

	if *serverURL != "" {
		if *file != "" {
			fatalf("--file is standalone only; the networked session loads from the server")
		}
		// Not fatal when this times out: the session opens Unlinked and
		// links once the server answers a load or poll.
		if err := httpx.WaitHTTPUp(strings.TrimRight(*serverURL, "/")+"/api/status", 3*time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s not answering yet, opening unlinked\n", *serverURL)
		}
	} else if *file != "" {
		enc := mustEncoding(*encName)
		content, title, err := importer.ReadFile(*file, enc)
		if err != nil {
			fatalf("%v", err)
		}
		opts.Content = content
		opts.Title = title
	}

	m := tui.New(opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fatalf("editor: %v", err)
	}
}

func cmdExport() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fs.String("file", "", "text file to render (required)")
	out := fs.String("out", ".", "output directory")
	png := fs.Bool("png", false, "also render an A4-paged PNG")
	zoom := fs.Float64("zoom", 1.0, "PNG zoom factor")
	encName := fs.String("encoding", defaultEncoding, "utf-8 | gbk")
	_ = fs.Parse(os.Args[2:])

	if *file == "" {
		fatalf("export needs --file (see: pagepad help export)")
	}
	enc := mustEncoding(*encName)
	content, title, err := importer.ReadFile(*file, enc)
	if err != nil {
		fatalf("%v", err)
	}

	path, err := export.WriteTXT(*out, title, content)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println("Wrote", path)

	if *png {
		page := geom.NewPage().ChangeZoom(*zoom - 1.0)
		page = page.SyncHeight(geom.NaturalHeight(content))
		pngPath := filepath.Join(*out, export.PNGName(title))
		if err := export.WritePNG(pngPath, content, page); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("Wrote", pngPath)
	}
}

func cmdConfig() {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	serverURL := fs.String("server", "", "default server URL for edit")
	exportDir := fs.String("export-dir", "", "default directory for exports")
	encName := fs.String("encoding", "", "default encoding: utf-8 | gbk")
	_ = fs.Parse(os.Args[2:])

	path := cfg.DefaultPath()
	c, err := cfg.Load(path)
	if err != nil {
		fatalf("%v", err)
	}

	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "server":
			c.Server = *serverURL
		case "export-dir":
			c.ExportDir = *exportDir
		case "encoding":
			c.Encoding = mustEncoding(*encName).String()
		}
	})

	if changed {
		if path == "" {
			fatalf("no home directory to store settings in")
		}
		if err := cfg.Save(path, c); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("Wrote", path)
		return
	}
	fmt.Printf("server:     %s\nexport_dir: %s\nencoding:   %s\n", c.Server, c.ExportDir, fallback(c.Encoding, defaultEncoding))
	fmt.Println("file:      ", fallback(path, "(no home directory)"))
}

/* ---------- helpers ---------- */

func mustEncoding(name string) textenc.Encoding {
	enc, err := textenc.Parse(name)
	if err != nil {
		fatalf("%v", err)
	}
	return enc
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "pagepad: "+format+"\n", args...)
	os.Exit(1)
}
