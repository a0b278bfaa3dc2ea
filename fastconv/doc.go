// Package fastconv converts floating point values to 32-bit integers without
// the processor's float-to-int instruction.
//
// On x87 hardware a C cast must switch the FPU to truncation and back, which
// flushes the pipeline. Adding a bias of 1.5×2^36 instead moves the value into
// a binade where the mantissa's low 32 bits hold it in 16.16 fixed point; the
// integer is then read straight out of the bit pattern.
//
// Inputs must lie in [MinSafe, MaxSafe]. Outside that range the result is
// undefined. Build with -tags rtdebug to turn violations into panics;
// callers that need saturation clamp with Saturate first.
package fastconv
