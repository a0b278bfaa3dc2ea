package header

const headerTemplate = `/* Generated by rtbase for {{.Platform}}. Do not edit. */
#ifndef {{.Guard}}
#define {{.Guard}}

#include <stddef.h>
#include <string.h>
{{- if .Stdint}}
#include <stdint.h>
{{- end}}
{{- if .NeedMath}}
#include <math.h>
{{- end}}

/* numeric types */
{{- range .Typedefs}}
typedef {{.C}} {{.Name}};
{{- end}}
typedef char NIM_CHAR;
typedef char* NCSTRING;

#define NIM_TRUE ((NIM_BOOL) 1)
#define NIM_FALSE ((NIM_BOOL) 0)
#define NIM_NIL ((void*)0)
#define IL64(x) x{{if .Int64Suffix}}##{{.Int64Suffix}}{{end}}

/* calling conventions */
{{- range .Conventions}}
#define {{.Name}}(rettype, name) {{.Body}}
{{- end}}

#define N_LIB_EXPORT {{.Export}}
#define N_LIB_IMPORT {{.Import}}
#define N_INLINE(rettype, name) {{.Inline}}

/* float to int32, rounding: {{.Round}} */
{{- if eq .Round "lrint"}}
static N_INLINE(NS32, float64ToInt32)(double val) {
  return (NS32)lrint(val);
}

static N_INLINE(NS32, float32ToInt32)(float val) {
  return (NS32)lrintf(val);
}
{{- else if eq .Round "fistp"}}
static N_INLINE(NS32, float64ToInt32)(double val) {
  NS32 i;
  __asm {
    fld val
    fistp i
  }
  return i;
}

static N_INLINE(NS32, float32ToInt32)(float val) {
  NS32 i;
  __asm {
    fld val
    fistp i
  }
  return i;
}
{{- else}}
#define NIM_IMAN {{.MantissaWord}}

/* valid for -32768 <= val <= 32767.5 */
static N_INLINE(NS32, float64ToInt32)(double val) {
  double biased = val + {{.Bias}};
  double resid = val - (biased - {{.Bias}});
  NS32 words[2];
  NS32 fixed, base;
  NU32 frac;
  memcpy(words, &biased, sizeof words);
  fixed = words[NIM_IMAN];
  base = fixed >> 16;
  frac = (NU32)fixed & 0xFFFFu;
  if (frac > 0x8000u || (frac == 0x8000u && (resid > 0 || (resid == 0 && (base & 1)))))
    base++;
  return base;
}

static N_INLINE(NS32, float32ToInt32)(float val) {
  return float64ToInt32((double)val);
}
{{- end}}

/* memory */
#define zeroMem(a, size) memset(a, 0, size)
#define equalMem(a, b, size) (memcmp(a, b, size) == 0)

/* dynamic buffers */
#define SEQ_DECL_SIZE {{.SeqDeclSize}}

typedef struct {
  NS len, reserved;
} TGenericSeq;

typedef TGenericSeq* PGenericSeq;

typedef struct NimStringDesc {
  TGenericSeq Sup;
  NIM_CHAR data[SEQ_DECL_SIZE];
} NimStringDesc;

#define GenericSeqSize sizeof(TGenericSeq)

typedef char rtbase_check_seq_header[(sizeof(TGenericSeq) == {{.HeaderSize}}) ? 1 : -1];

#define STRING_LITERAL(name, str, length) \
  static const struct {                   \
    TGenericSeq Sup;                      \
    NIM_CHAR data[(length) + 1];          \
  } name = {{"{{"}}(length), (length)}, str}
{{- if .Frames}}

/* call frames */
typedef struct TFrame TFrame;
struct TFrame {
  TFrame* prev;
  NCSTRING procname;
  NS line;
  NCSTRING filename;
  NS len;
};

extern {{if .ThreadVar}}{{.ThreadVar}} {{end}}TFrame* framePtr;

#define nimFrame(f) do { (f)->prev = framePtr; framePtr = (f); } while (0)
#define popFrame() (framePtr = framePtr->prev)
{{- end}}

#endif /* {{.Guard}} */
`
