package catalog

// defaultPages returns the built-in reference set, available even
// with an empty content directory.
func defaultPages() []*Page {
	return []*Page{
		{
			ID:          "array",
			Title:       "Array",
			Description: "Ordered list of values with a rich set of iteration and transformation methods.",
			Overview: "The <code>Array</code> object enables storing a collection of multiple items " +
				"under a single variable name. Arrays are resizable, may contain a mix of types, " +
				"and are zero-indexed. Most transformation methods (<code>map</code>, " +
				"<code>filter</code>, <code>reduce</code>) return new arrays rather than mutating " +
				"the original.",
			SyntaxExample: `const fruits = ['apple', 'banana', 'cherry'];
console.log(fruits.length);
console.log(fruits.map(f => f.toUpperCase()));
console.log(fruits.filter(f => f.startsWith('b')));`,
			Category: "indexed-collections",
			Tags:     []string{"collection", "list", "iteration"},
			UseCases: []UseCase{
				{
					Title: "Summing with reduce",
					Code: `const total = [1, 2, 3, 4].reduce((sum, n) => sum + n, 0);
console.log(total);`,
					Explanation: "reduce folds the array into a single value using an accumulator.",
				},
				{
					Title: "Destructuring and spread",
					Code: `const [first, ...rest] = [10, 20, 30];
console.log(first);
console.log(rest);`,
					Explanation: "Destructuring pulls elements into variables; spread collects the remainder.",
				},
			},
		},
		{
			ID:          "map",
			Title:       "Map",
			Description: "Keyed collection that remembers insertion order and accepts any value as a key.",
			Overview: "A <code>Map</code> holds key-value pairs where keys may be objects, functions " +
				"or primitives. Unlike plain objects, a Map tracks its size directly, iterates in " +
				"insertion order, and avoids prototype key collisions.",
			SyntaxExample: `const scores = new Map();
scores.set('alice', 10);
scores.set('bob', 7);
console.log(scores.get('alice'));
console.log(scores.size);`,
			Category: "keyed-collections",
			Tags:     []string{"collection", "dictionary", "hash"},
			UseCases: []UseCase{
				{
					Title: "Object keys",
					Code: `const meta = new Map();
const el = {tag: 'div'};
meta.set(el, {visible: true});
console.log(meta.get(el));`,
					Explanation: "Any object can serve as a key without string coercion.",
				},
				{
					Title: "Iterating entries",
					Code: `const m = new Map([['a', 1], ['b', 2]]);
for (const [key, value] of m) {
  console.log(key, value);
}`,
					Explanation: "Maps iterate their entries in insertion order.",
				},
			},
		},
		{
			ID:          "set",
			Title:       "Set",
			Description: "Collection of unique values of any type.",
			Overview: "A <code>Set</code> stores each value at most once. Membership checks are " +
				"constant time, and iteration follows insertion order. Sets are the idiomatic way " +
				"to deduplicate an array.",
			SyntaxExample: `const unique = new Set([1, 2, 2, 3, 3, 3]);
console.log(unique.size);
console.log([...unique]);`,
			Category: "keyed-collections",
			Tags:     []string{"collection", "unique", "dedupe"},
			UseCases: []UseCase{
				{
					Title: "Deduplicating an array",
					Code: `const tags = ['js', 'web', 'js', 'dom'];
console.log([...new Set(tags)]);`,
					Explanation: "Spreading a Set built from an array drops the duplicates.",
				},
			},
		},
		{
			ID:          "promise",
			Title:       "Promise",
			Description: "Placeholder for the eventual result of an asynchronous operation.",
			Overview: "A <code>Promise</code> is in one of three states: pending, fulfilled or " +
				"rejected. Handlers attached with <code>then</code>, <code>catch</code> and " +
				"<code>finally</code> run when the promise settles. <code>Promise.all</code> and " +
				"<code>Promise.race</code> combine several pending operations; race resolves with " +
				"whichever settles first.",
			SyntaxExample: `const p = Promise.resolve(42);
p.then(value => console.log('resolved with', value));`,
			Category: "control-abstractions",
			Tags:     []string{"async", "concurrency", "future"},
			UseCases: []UseCase{
				{
					Title: "Chaining",
					Code: `Promise.resolve(2)
  .then(n => n * 3)
  .then(n => console.log(n));`,
					Explanation: "Each then returns a new promise carrying the transformed value.",
				},
				{
					Title: "First settled wins",
					Code: `Promise.race([Promise.resolve('fast'), new Promise(() => {})])
  .then(winner => console.log(winner));`,
					Explanation: "race settles as soon as any input settles, here the resolved one.",
				},
			},
		},
		{
			ID:          "proxy",
			Title:       "Proxy",
			Description: "Wrapper that intercepts fundamental operations on a target object.",
			Overview: "A <code>Proxy</code> pairs a target object with a handler whose traps " +
				"(<code>get</code>, <code>set</code>, <code>has</code>, ...) run in place of the " +
				"default behavior. Proxies power validation layers, reactive frameworks and " +
				"negative array indexing tricks.",
			SyntaxExample: `const target = {greeting: 'hello'};
const proxy = new Proxy(target, {
  get(obj, prop) {
    return prop in obj ? obj[prop] : 'missing: ' + String(prop);
  }
});
console.log(proxy.greeting);
console.log(proxy.unknown);`,
			Category: "reflection",
			Tags:     []string{"metaprogramming", "trap", "intercept"},
			UseCases: []UseCase{
				{
					Title: "Validation on set",
					Code: `const user = new Proxy({}, {
  set(obj, prop, value) {
    if (prop === 'age' && typeof value !== 'number') {
      throw new Error('age must be a number');
    }
    obj[prop] = value;
    return true;
  }
});
user.age = 30;
console.log(user.age);`,
					Explanation: "The set trap rejects writes that fail validation.",
				},
			},
		},
		{
			ID:          "symbol",
			Title:       "Symbol",
			Description: "Unique, immutable primitive used as collision-free property keys.",
			Overview: "Every <code>Symbol()</code> call returns a value guaranteed distinct from " +
				"all others, even with the same description. Well-known symbols such as " +
				"<code>Symbol.iterator</code> let objects customize language behavior.",
			SyntaxExample: `const id = Symbol('id');
const user = {[id]: 123, name: 'alice'};
console.log(user[id]);
console.log(Object.keys(user));`,
			Category: "fundamental-objects",
			Tags:     []string{"primitive", "unique", "key"},
			UseCases: []UseCase{
				{
					Title: "Custom iterator",
					Code: `const range = {
  from: 1, to: 3,
  [Symbol.iterator]() {
    let current = this.from;
    const last = this.to;
    return {
      next: () => current <= last
        ? {value: current++, done: false}
        : {value: undefined, done: true}
    };
  }
};
console.log([...range]);`,
					Explanation: "Defining Symbol.iterator makes any object spreadable and for-of iterable.",
				},
			},
		},
		{
			ID:          "weakmap",
			Title:       "WeakMap",
			Description: "Key-value collection whose object keys do not prevent garbage collection.",
			Overview: "A <code>WeakMap</code> holds its keys weakly: once no other reference to a " +
				"key object exists, the entry can be reclaimed. WeakMaps are not iterable and " +
				"expose no size, which makes them suitable for private per-object metadata.",
			SyntaxExample: `const secrets = new WeakMap();
const obj = {};
secrets.set(obj, 'hidden value');
console.log(secrets.get(obj));
console.log(secrets.has({}));`,
			Category: "keyed-collections",
			Tags:     []string{"collection", "memory", "weak-reference"},
			UseCases: []UseCase{
				{
					Title: "Private instance data",
					Code: `const internals = new WeakMap();
class Counter {
  constructor() { internals.set(this, {count: 0}); }
  increment() { return ++internals.get(this).count; }
}
const c = new Counter();
c.increment();
console.log(c.increment());`,
					Explanation: "State keyed by the instance stays inaccessible from outside the class.",
				},
			},
		},
		{
			ID:          "json",
			Title:       "JSON",
			Description: "Built-in namespace for parsing and serializing JSON text.",
			Overview: "The <code>JSON</code> object exposes <code>parse</code> and " +
				"<code>stringify</code>. Both accept optional reviver/replacer hooks, and " +
				"stringify takes an indentation argument for pretty printing.",
			SyntaxExample: `const text = '{"name":"alice","roles":["admin"]}';
const data = JSON.parse(text);
console.log(data.name);
console.log(JSON.stringify({ok: true}));`,
			Category: "text-processing",
			Tags:     []string{"serialization", "parse", "stringify"},
			UseCases: []UseCase{
				{
					Title: "Deep clone via round trip",
					Code: `const original = {a: {b: 1}};
const clone = JSON.parse(JSON.stringify(original));
clone.a.b = 2;
console.log(original.a.b, clone.a.b);`,
					Explanation: "A stringify/parse round trip copies plain data structures deeply.",
				},
			},
		},
	}
}
