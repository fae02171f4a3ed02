// Package config loads the welcome configuration file.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicitly provided path
//  2. ~/.config/welcome/config.toml
//  3. Built-in defaults when the file does not exist
//
// Keys that are missing or blank keep their defaults.
//
// # TOML Format
//
//	listen = "127.0.0.1:8080"
//	manifest = "https://welcome.example.com/data.json"
//	log_level = "info"
//	log_file = "~/.local/state/welcome/welcome.log"
//	celebrate = true
//
// The manifest may be an http(s) URL or a file path. File paths and log_file
// get tilde expansion and are made absolute; URLs are left untouched.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML and an unknown
// log_level. A missing file is not an error.
package config
