package object

// Realm holds the intrinsic objects constructors fall back to when a
// construction target carries no usable "prototype" property.
type Realm struct {
	// ObjectPrototype is the root of every intrinsic prototype chain.
	ObjectPrototype *Object

	protos map[string]*Object
}

// NewRealm creates a realm with a fresh object prototype.
func NewRealm() *Realm {
	return &Realm{
		ObjectPrototype: New(nil),
		protos:          make(map[string]*Object),
	}
}

// Prototype returns the intrinsic prototype registered under name, creating
// an empty object rooted at ObjectPrototype on first use. Names follow the
// constructor they belong to ("Int8Array", "ArrayBuffer", ...).
func (r *Realm) Prototype(name string) *Object {
	if p, ok := r.protos[name]; ok {
		return p
	}
	p := New(r.ObjectPrototype)
	r.protos[name] = p
	return p
}

// Context is the execution context threaded explicitly through every call
// chain. It is not safe for concurrent use; the runtime is single-threaded
// and re-entrancy is strictly sequential.
type Context struct {
	Realm *Realm
}

// NewContext creates a context over a fresh realm.
func NewContext() *Context {
	return &Context{Realm: NewRealm()}
}
