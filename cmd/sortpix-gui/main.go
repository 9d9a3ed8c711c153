package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/oukeidos/sortpix/internal/config"
	"github.com/oukeidos/sortpix/internal/labels"
	"github.com/oukeidos/sortpix/internal/logger"
	"github.com/oukeidos/sortpix/internal/queue"
	"github.com/oukeidos/sortpix/internal/session"
)

func printUsage() {
	fmt.Println("Missing parameter: path_to_images")
	fmt.Println("Usage: sortpix-gui path_to_images")
	fmt.Println("The setup is simple: have a directory with images to label, and sub-directories in that directory which are the labels.")
	fmt.Println("Example directory structure: /home/myimages/img1.jpg ... /home/myimages/cat/ ... /home/myimages/dog/")
	fmt.Println("Example usage: sortpix-gui /home/myimages/")
}

func main() {
	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	if len(os.Args) != 2 {
		printUsage()
		return
	}
	root := os.Args[1]
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		logger.Fatal("Image directory is not usable", "path", root, "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	set, err := labels.Discover(root)
	if err != nil {
		logger.Fatal("Failed to discover labels", "path", root, "error", err)
	}
	names := make([]string, 0, set.Len())
	for i := range set.Labels() {
		names = append(names, set.Label(i).Name)
	}
	logger.Info("Labels loaded", "count", set.Len(), "labels", fmt.Sprint(names))

	images, err := queue.Scan(root, cfg.Extensions)
	if err != nil {
		logger.Fatal("Failed to scan images", "path", root, "error", err)
	}
	if !cfg.Sorted {
		queue.Shuffle(images, cfg.Seed)
	}
	logger.Info("Image queue ready", "count", len(images), "sorted", cfg.Sorted)

	sess := session.New(root, set, images, cfg.LogFile)

	myApp := app.NewWithID("com.oukeidos.sortpix")
	w := myApp.NewWindow("sortpix")
	w.SetMaster()
	w.Resize(fyne.NewSize(float32(cfg.DisplayWidth)+260, float32(cfg.DisplayHeight)+120))
	w.CenterOnScreen()

	la := newLabelerApp(w, sess, cfg)
	la.start()

	w.ShowAndRun()
}
