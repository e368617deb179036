// Package main is the entry point of the Superior Limousine LLC website.
// It serves server rendered pages with fiber. Every page shares a fixed header
// with the logo, a scrolling marquee, the desktop link bar and a mobile menu
// whose open state travels in the menu query parameter.
package main
