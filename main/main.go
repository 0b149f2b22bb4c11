package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/phil-mansfield/galaxy/galaxy"
	"github.com/phil-mansfield/galaxy/io"
	"github.com/phil-mansfield/galaxy/scene"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		generate, check, exampleConfig string
		logFile string
		seed int
	)
	vars := map[string]*string{
		"Generate":      &generate,
		"Check":         &check,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&generate, "Generate", "",
		"Configuration file for [Generate] mode. Defaults to $GALAXY_CONFIG "+
			"if no other mode is set.",
	)
	flag.StringVar(
		&check, "Check", "",
		"Scene file to validate in [Check] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Galaxy' and 'Anchors'.",
	)
	flag.IntVar(
		&seed, "Seed", -1,
		"Overrides the config file's Seed. Zero seeds from the clock, so "+
			"fixed seeds must be positive. Defaults to $GALAXY_SEED.",
	)
	flag.StringVar(
		&logFile, "LogFile", "",
		"Location to write log statements to. Overrides the config file's "+
			"LogFile. Default is stderr.",
	)

	flag.Parse()

	if err := loadEnv(&generate, &check, &exampleConfig, &seed); err != nil {
		log.Fatal(err.Error())
	}

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Generate":
		wrap, err := io.ReadGalaxyConfig(generate)
		if err != nil { log.Fatal(err.Error()) }
		if logFile != "" { wrap.Scene.LogFile = logFile }
		if seed >= 0 { wrap.Scene.Seed = seed }

		if err := generateMode(wrap); err != nil { log.Fatal(err.Error()) }

	case "Check":
		err := checkMode(check, &io.SceneConfig{LogFile: logFile})
		if err != nil { log.Fatal(err.Error()) }

	case "ExampleConfig":
		switch strings.ToLower(exampleConfig) {
		case "galaxy":
			fmt.Println(io.ExampleGalaxyFile)
		case "anchors":
			fmt.Println(io.ExampleAnchorsFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Galaxy' and 'Anchors'.",
			)
		}

	default:
		panic("Impossible")
	}
}

// loadEnv reads a .env file in the working directory, if one exists, and
// fills in values which were not given on the command line.
func loadEnv(generate, check, exampleConfig *string, seed *int) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) { return err }

	if *generate == "" && *check == "" && *exampleConfig == "" {
		*generate = os.Getenv("GALAXY_CONFIG")
	}

	if str := os.Getenv("GALAXY_SEED"); str != "" && *seed < 0 {
		n, err := strconv.Atoi(str)
		if err != nil || n < 0 {
			return fmt.Errorf("GALAXY_SEED = '%s' is not a valid seed.", str)
		}
		*seed = n
	}

	return nil
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but galaxy "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupFileGroup(con *io.SceneConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		lf, err := os.Create(con.LogFile)
		if err != nil { return nil, err }
		log.SetOutput(lf)
		fg.log = lf
	}

	if con.ValidProfileFile() {
		pf, err := os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		if err := pprof.StartCPUProfile(pf); err != nil {
			pf.Close()
			fg.Close()
			return nil, err
		}
		fg.prof = pf
	}

	return fg, nil
}

// generateMode runs generateMain with the log and profile files open. The
// files are closed before returning, so a failed run still leaves a complete
// profile behind.
func generateMode(wrap *io.GalaxyWrapper) error {
	fg, err := setupFileGroup(&wrap.Scene)
	if err != nil { return err }
	defer fg.Close()

	return generateMain(wrap)
}

func checkMode(fname string, con *io.SceneConfig) error {
	fg, err := setupFileGroup(con)
	if err != nil { return err }
	defer fg.Close()

	return checkMain(fname)
}

func generateMain(wrap *io.GalaxyWrapper) error {
	cfg, err := wrap.Galaxy()
	if err != nil { return err }

	var g *galaxy.Generator
	if seed, ok := wrap.Seed(); ok {
		log.Printf("Seeding generator with %d.", seed)
		g, err = galaxy.NewSeed(cfg, seed)
	} else {
		g, err = galaxy.New(cfg, nil)
	}
	if err != nil { return err }

	out := wrap.Scene.Output
	log.Printf(
		"Writing %d particles (%d shell, %d^3 lattice, %d ring) to %s.",
		cfg.Count(), cfg.Shell.Count, cfg.Lattice.Dimension,
		cfg.Rings.Count*cfg.Rings.Radii, out,
	)
	if err := g.WriteFile(out, wrap.Scene.Precision); err != nil {
		return err
	}

	if wrap.Scene.ValidPlotFile() {
		_, ps, err := scene.ReadFile(out)
		if err != nil { return err }
		log.Printf("Plotting preview to %s.", wrap.Scene.PlotFile)
		plotScene(ps, cfg, wrap.Scene.PlotFile)
	}

	return nil
}

func checkMain(fname string) error {
	hd, ps, err := scene.ReadFile(fname)
	if err != nil { return err }
	if err := scene.Check(hd, ps); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	log.Printf(
		"%s is a valid scene with %d particles. Header parameters: %g %g.",
		fname, hd.Count, hd.Param1, hd.Param2,
	)
	return nil
}
