package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"itemgen/internal/assets"
	"itemgen/internal/commands"
	"itemgen/internal/display"
	"itemgen/internal/gallery"
	"itemgen/internal/genconfig"
	"itemgen/internal/graphics"
	"itemgen/internal/itemgen"
	"itemgen/internal/logger"
	"itemgen/internal/sampler"
)

// genFlags are the generation overrides shared by generate and view.
type genFlags struct {
	fs      *flag.FlagSet
	config  *string
	assets  *string
	count   *int
	colors  *int
	thieves *int
	extras  *int
	seed    *int64
}

func newGenFlags(name string) *genFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &genFlags{
		fs:      fs,
		config:  fs.String("config", genconfig.ConfigPath, "settings file"),
		assets:  fs.String("assets", "", "asset root (overrides settings)"),
		count:   fs.Int("count", 0, "items to generate"),
		colors:  fs.Int("colors", 0, "colors per item"),
		thieves: fs.Int("thieves", 0, "items without a model"),
		extras:  fs.Int("extras", 0, "items without a painting"),
		seed:    fs.Int64("seed", 0, "random seed (0 = time based)"),
	}
}

// settings loads the settings file, applies the environment, then any flag the user set.
func (f *genFlags) settings() (genconfig.Settings, error) {
	s, err := genconfig.LoadFrom(*f.config)
	if err != nil {
		return s, err
	}
	s = s.WithEnv()
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "assets":
			s.AssetRoot = *f.assets
		case "count":
			s.Generation.Count = *f.count
		case "colors":
			s.Generation.ColorsForEach = *f.colors
		case "thieves":
			s.Generation.ThiefCount = *f.thieves
		case "extras":
			s.Generation.ExtraModelsCount = *f.extras
		case "seed":
			s.Generation.Seed = *f.seed
		}
	})
	return s, nil
}

func (f *genFlags) generate(log *logger.Logger) (genconfig.Settings, *assets.Pools, []itemgen.ItemInfo, error) {
	s, err := f.settings()
	if err != nil {
		return s, nil, nil, err
	}
	pools, err := assets.Load(s.AssetRoot, s.Items, log)
	if err != nil {
		return s, nil, nil, err
	}
	items, err := itemgen.New(pools, log).Generate(s.Generation)
	if err != nil {
		return s, nil, nil, err
	}
	return s, pools, items, nil
}

func registerCommands(reg *commands.Registry, log *logger.Logger) {
	gen := newGenFlags("generate")
	previews := gen.fs.Bool("previews", false, "write painting previews to the preview dir")
	reg.Register("generate", "generate items and print them", gen.fs, func() error {
		s, pools, items, err := gen.generate(log)
		if err != nil {
			return err
		}
		printItems(pools, items)
		if *previews {
			return writePreviews(s.PreviewDir, pools, items, log)
		}
		return nil
	})

	view := newGenFlags("view")
	spacing := view.fs.Float64("spacing", 0, "distance between items")
	reg.Register("view", "generate items and show them in a window", view.fs, func() error {
		_, _, items, err := view.generate(log)
		if err != nil {
			return err
		}
		g := gallery.New(float32(*spacing))
		defer g.Close()
		if err := itemgen.Deliver(items, g); err != nil {
			return err
		}
		graphics.Run("itemgen", g.Update, g.Draw)
		return nil
	})

	sfs := flag.NewFlagSet("sample", flag.ContinueOnError)
	pool := sfs.Int("pool", 12, "pool size")
	count := sfs.Int("count", 5, "indices to draw")
	batched := sfs.Bool("batched", false, "allow count > pool by drawing in batches")
	sseed := sfs.Int64("seed", 0, "random seed (0 = time based)")
	reg.Register("sample", "draw random pool indices", sfs, func() error {
		src := sampler.NewSource(*sseed)
		var idx []int
		var err error
		if *batched {
			idx, err = sampler.Batched(src, *pool, *count)
		} else {
			idx, err = sampler.Unique(src, *pool, *count)
		}
		if err != nil {
			return err
		}
		fmt.Println(strings.Trim(fmt.Sprint(idx), "[]"))
		return nil
	})

	pfs := flag.NewFlagSet("preview", flag.ContinueOnError)
	pcfg := pfs.String("config", genconfig.ConfigPath, "settings file")
	item := pfs.String("item", "Ball", "catalog item whose texture to render")
	palette := pfs.String("colors", "Red,Green,Blue", "comma-separated color names")
	out := pfs.String("out", "preview.png", "output PNG")
	reg.Register("preview", "render one painting to PNG", pfs, func() error {
		s, err := genconfig.LoadFrom(*pcfg)
		if err != nil {
			return err
		}
		s = s.WithEnv()
		obj := indexOf(s.Items, *item)
		if obj < 0 {
			return fmt.Errorf("preview: %q is not in the catalog", *item)
		}
		tex, err := assets.LoadTexture(*item, assets.TexturePath(s.AssetRoot, *item))
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		colors, err := colorsByName(strings.Split(*palette, ","))
		if err != nil {
			return err
		}
		if err := display.SavePreview(*out, &itemgen.Painting{Texture: tex, Colors: colors}); err != nil {
			return err
		}
		log.Logf("preview: wrote %s", *out)
		return nil
	})

	cfs := flag.NewFlagSet("config", flag.ContinueOnError)
	ccfg := cfs.String("config", genconfig.ConfigPath, "settings file")
	save := cfs.Bool("save", false, "write the effective settings back to the file")
	reg.Register("config", "print (or save) the effective settings", cfs, func() error {
		s, err := genconfig.LoadFrom(*ccfg)
		if err != nil {
			return err
		}
		s = s.WithEnv()
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if *save {
			return genconfig.SaveTo(*ccfg, s)
		}
		return nil
	})
}

func printItems(pools *assets.Pools, items []itemgen.ItemInfo) {
	for i, it := range items {
		kind := "full"
		switch {
		case it.IsThief():
			kind = "thief"
		case it.IsExtraModel():
			kind = "extra-model"
		}
		var names []string
		switch {
		case it.Painting != nil:
			for _, c := range it.Painting.Colors {
				names = append(names, c.Name)
			}
		case it.Model != nil:
			for _, sl := range it.Model.Slots {
				names = append(names, sl.Material)
			}
		}
		fmt.Printf("%2d  %-10s %-12s %s\n", i, pools.Name(it.Object), kind, strings.Join(names, ","))
	}
	s := itemgen.Summarize(items)
	fmt.Printf("%d items: %d full, %d thieves, %d extra models\n", s.Total, s.Full, s.Thieves, s.ExtraModels)
}

func writePreviews(dir string, pools *assets.Pools, items []itemgen.ItemInfo, log *logger.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i, it := range items {
		if it.Painting == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", i, pools.Name(it.Object)))
		if err := display.SavePreview(path, it.Painting); err != nil {
			return fmt.Errorf("preview %d: %w", i, err)
		}
	}
	log.Logf("previews written to %s", dir)
	return nil
}

func colorsByName(names []string) ([]assets.Color, error) {
	pool := assets.DefaultColors()
	out := make([]assets.Color, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		found := false
		for _, c := range pool {
			if strings.EqualFold(c.Name, n) {
				out = append(out, c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown color %q", n)
		}
	}
	return out, nil
}

func indexOf(items []string, name string) int {
	for i, it := range items {
		if it == name {
			return i
		}
	}
	return -1
}
