package script

// Marker identifies a file that already carries the header block.
const Marker = "# Script generated using CaptureCLI"

// Header is written once at the top of every new script. The leading blank
// line and trailing spaces are kept so existing scripts compare equal.
const Header = "\n" +
	"#!/bin/sh\n" +
	"#     ___               _                        ___   __   _____ \n" +
	"#    / __\\ __ _  _ __  | |_  _   _  _ __  ___   / __\\ / /   \\_   \\\n" +
	"#   / /   / _` || '_ \\ | __|| | | || '__|/ _ \\ / /   / /     / /\\/\n" +
	"#  / /___| (_| || |_) || |_ | |_| || |  |  __// /___/ /___/\\/ /_  \n" +
	"#  \\____/ \\__,_|| .__/  \\__| \\__,_||_|   \\___|\\____/\\____/\\____/  \n" +
	"#               |_| \n" +
	"#\n" +
	"# Script generated using CaptureCLI by coderipper\n" +
	"# Website: https://capturecli.xyz\n" +
	"#\n" +
	"# CaptureSettings:\n"
