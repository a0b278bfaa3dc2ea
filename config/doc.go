// Package config loads the build profile rtbase resolves targets from.
//
// A profile is a YAML file. Every field can be overridden from the
// environment:
//
//	RTBASE_TARGET      target triple, empty for the host
//	RTBASE_TOOLCHAIN   toolchain override
//	RTBASE_DEBUG       development logging
//	RTBASE_FRAMES      emit call-frame records
//	RTBASE_LOG_LEVEL   debug, info, warn or error
//	RTBASE_OUTPUT      header output path
//
// Example profile:
//
//	target: x86_64-windows-msvc
//	frames: true
//	thread_local_frames: true
//	output: include/rtbase.h
package config
