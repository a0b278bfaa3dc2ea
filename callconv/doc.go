// Package callconv resolves calling-convention and linkage spellings for a
// target platform.
//
// Generated code names one logical Convention (cdecl, stdcall, the language's
// default …) and one Linkage direction. A Resolver maps each to the syntax the
// target toolchain understands using a priority-ordered table of rules: the
// first matching rule that defines a field supplies it, and a portable
// fallback rule defines everything, so resolution is total.
//
//	r := callconv.DefaultResolver()
//	tr, err := r.Resolve(callconv.Stdcall, callconv.Import, p)
//	tr.Func.Render("int", "MessageBoxA")  // int __stdcall MessageBoxA
//	tr.Ptr.Render("int", "cb")            // int (__stdcall *cb)
//	tr.Linkage                            // __declspec(dllimport)
//
// On platforms with a single hardware convention every variant resolves to
// the same unadorned spelling instead of failing. An unrecognized platform is
// a configuration error reported before any spelling is produced.
package callconv
