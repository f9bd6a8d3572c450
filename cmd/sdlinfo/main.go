// sdlinfo - print what the SDL3 runtime on this machine can do
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"gosdl3/sdl"
)

type cfg struct {
	Library string // explicit path to the SDL3 shared library
}

func cfgPath() string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, ".config", "sdlinfo", "config.toml")
}

func load() *cfg {
	var c cfg
	toml.DecodeFile(cfgPath(), &c)
	return &c
}

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	library := flag.String("library", "", "path to the SDL3 shared library")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	c := load()
	if *library != "" {
		c.Library = *library
	}
	if c.Library != "" {
		if err := sdl.LoadLibrary(c.Library); err != nil {
			logrus.WithError(err).Fatal("library load failed")
		}
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMEPAD | sdl.INIT_SENSOR | sdl.INIT_CAMERA); err != nil {
		logrus.WithError(err).Fatal("init failed")
	}
	defer sdl.Quit()

	printVersion()
	printVideo()
	printAudio()
	printInput()
	printSensors()
	printCameras()
	printPower()
}

func printVersion() {
	v := sdl.GetVersion()
	fmt.Printf("SDL %s (%s)\n", sdl.VersionString(v), sdl.GetRevision())
	if now, err := sdl.GetCurrentTime(); err == nil {
		if dt, err := now.ToDateTime(true); err == nil {
			fmt.Printf("report time %04d-%02d-%02d %02d:%02d:%02d\n",
				dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
		}
	}
	fmt.Printf("compiled against %s\n\n", sdl.VersionString(sdl.VersionNum(sdl.MAJOR_VERSION, sdl.MINOR_VERSION, sdl.MICRO_VERSION)))
}

func printVideo() {
	fmt.Printf("video driver: %s\n", sdl.GetCurrentVideoDriver())

	displays, err := sdl.GetDisplays()
	if err != nil {
		logrus.WithError(err).Warn("display enumeration failed")
		return
	}
	for _, d := range displays {
		mode, err := d.CurrentMode()
		if err != nil {
			logrus.WithError(err).WithField("display", d).Warn("no current mode")
			continue
		}
		fmt.Printf("  display %q: %dx%d @ %.0f Hz\n", d.Name(), mode.W, mode.H, mode.RefreshRate)
	}

	fmt.Printf("render drivers:")
	for i := 0; i < sdl.GetNumRenderDrivers(); i++ {
		fmt.Printf(" %s", sdl.GetRenderDriver(i))
	}
	fmt.Printf("\ngpu drivers:")
	for i := 0; i < sdl.GetNumGPUDrivers(); i++ {
		fmt.Printf(" %s", sdl.GetGPUDriver(i))
	}
	fmt.Println()
	fmt.Println()
}

func printAudio() {
	fmt.Printf("audio driver: %s\n", sdl.GetCurrentAudioDriver())

	devices, err := sdl.GetAudioPlaybackDevices()
	if err != nil {
		logrus.WithError(err).Warn("audio enumeration failed")
		return
	}
	for _, d := range devices {
		spec, frames, err := d.Format()
		if err != nil {
			fmt.Printf("  %s\n", d.Name())
			continue
		}
		fmt.Printf("  %s: %d Hz, %d ch, %d-bit, %d-frame buffer\n",
			d.Name(), spec.Freq, spec.Channels, spec.Format.BitSize(), frames)
	}
	fmt.Println()
}

func printInput() {
	pads, err := sdl.GetGamepads()
	if err != nil {
		logrus.WithError(err).Warn("gamepad enumeration failed")
		return
	}
	fmt.Printf("gamepads: %d\n", len(pads))
	for _, id := range pads {
		fmt.Printf("  %s (%s)\n", id.GamepadName(), id.GUID())
	}
	fmt.Println()
}

func printSensors() {
	sensors, err := sdl.GetSensors()
	if err != nil {
		logrus.WithError(err).Warn("sensor enumeration failed")
		return
	}
	fmt.Printf("sensors: %d\n", len(sensors))
	for _, id := range sensors {
		fmt.Printf("  %s\n", id.Name())
	}

	touches, err := sdl.GetTouchDevices()
	if err == nil {
		fmt.Printf("touch devices: %d\n", len(touches))
	}
	fmt.Println()
}

func printCameras() {
	cams, err := sdl.GetCameras()
	if err != nil {
		logrus.WithError(err).Warn("camera enumeration failed")
		return
	}
	fmt.Printf("cameras: %d (driver %s)\n", len(cams), sdl.GetCurrentCameraDriver())
	for _, id := range cams {
		fmt.Printf("  %s\n", id.Name())
		formats, err := id.SupportedFormats()
		if err != nil {
			continue
		}
		for _, f := range formats {
			fps := 0
			if f.FramerateDenominator != 0 {
				fps = int(f.FramerateNumerator / f.FramerateDenominator)
			}
			fmt.Printf("    %dx%d @ %d fps\n", f.Width, f.Height, fps)
		}
	}
	fmt.Println()
}

func printPower() {
	state, seconds, percent, err := sdl.GetPowerInfo()
	if err != nil {
		logrus.WithError(err).Warn("power query failed")
		return
	}
	fmt.Printf("power: %s", state)
	if percent >= 0 {
		fmt.Printf(", %d%%", percent)
	}
	if seconds >= 0 {
		fmt.Printf(", %d min left", seconds/60)
	}
	fmt.Println()
}
