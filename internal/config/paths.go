package config

const (
	// Relative to the project root, which is the working directory.
	SourceIcon = "assets/logo_512.png"
	AndroidRes = "android/app/src/main/res"

	ConfigFileName = "android_icons.yaml"
)

// Project Structure:
// Root/
//  ├── assets/logo_512.png
//  ├── android_icons.yaml (optional)
//  └── android/app/src/main/res/
//       └── mipmap-<density>/ic_launcher.png
