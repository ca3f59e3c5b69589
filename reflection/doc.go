// Package reflection exposes the compiler's layout and declaration
// introspection.
//
// Every type here is a view of a record owned by the compiler. Values are
// only ever obtained as pointers from a program layout or from another
// reflection value, and stay valid while the component type that produced
// the layout is alive. They are never freed by this package.
//
//	Shader          program layout: parameters, entry points, type lookup
//	├── EntryPoint  stage, thread group size, parameters
//	├── VariableLayout / TypeLayout
//	│               offsets, sizes, binding ranges, descriptor sets
//	└── Variable / Type / Function / Generic / Decl
//	                declarations and their attributes
//
// Accessors that may legitimately find nothing return a second bool
// result. Indexed children are also available as iter.Seq2 sequences, for
// example:
//
//	for i, p := range shader.Parameters() {
//		fmt.Println(i, p.Name(), p.BindingIndex(), p.BindingSpace())
//	}
package reflection
