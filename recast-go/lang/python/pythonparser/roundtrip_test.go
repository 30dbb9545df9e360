package pythonparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
)

func roundtrip(t *testing.T, src string) {
	t.Helper()
	mod, err := ParseModule([]byte(src), DefaultOptions)
	require.NoError(t, err, "parse failed for %q", src)
	require.Equal(t, src, pythoncst.Codegen(mod.Module), "codegen mismatch for %q", src)
}

func roundtripAll(t *testing.T, srcs []string) {
	t.Helper()
	for _, src := range srcs {
		roundtrip(t, src)
	}
}

func TestRoundtrip_Simple(t *testing.T) {
	roundtripAll(t, []string{
		"",
		"x = 1\n",
		"x=1\n",
		"x  =   1\n",
		"x = 1",
		"x = 1 ",
		"pass\n",
		"a = 1; b = 2\n",
		"a = 1 ;b=2\n",
		"a = 1;\n",
		"a = 1; # done\n",
		"a = 1 ;  # done\n",
		"a = b = c\n",
		"a, b = b, a\n",
		"a, = b\n",
		"a, *b = c\n",
		"x: int\n",
		"x: int = 5\n",
		"a[0]: int = 5\n",
		"x += 1\n",
		"x //= 2\n",
		"x @= m\n",
		"x **= 2\n",
		"del a\n",
		"del a, b\n",
		"global x\n",
		"global x, y\n",
		"nonlocal a,b\n",
		"assert x\n",
		"assert x, 'nope'\n",
		"raise\n",
		"raise ValueError\n",
		"raise ValueError('x') from err\n",
	})
}

func TestRoundtrip_CommentsAndBlankLines(t *testing.T) {
	roundtripAll(t, []string{
		"# just a comment\n",
		"# a\n# b\n",
		"\n\n",
		"\n\nx = 1\n\n\n",
		"# header\n\nx = 1  # trailing\n",
		"x = 1\n\n# between\n\ny = 2\n",
		"if a:\n    pass\n# outdented after block\n",
		"if a:\n    x = 1\n    # inner comment\n    y = 2\n",
		"if a:\n    pass\n\n    # still inside\n\nz = 1\n",
		"# no newline at end",
	})
}

func TestRoundtrip_Imports(t *testing.T) {
	roundtripAll(t, []string{
		"import os\n",
		"import os.path\n",
		"import os.path as p, sys\n",
		"from os import path\n",
		"from os import path as p, sep\n",
		"from os.path import *\n",
		"from . import x\n",
		"from .. import y\n",
		"from ...pkg import z\n",
		"from .mod import (a, b)\n",
		"from .mod import (\n    a as b,\n    c,\n)\n",
		"from a.b.c import d\n",
	})
}

func TestRoundtrip_Expressions(t *testing.T) {
	roundtripAll(t, []string{
		"x = a + b * c\n",
		"x = (a + b) * c\n",
		"x = a ** b ** c\n",
		"x = -a ** 2\n",
		"x = not not a\n",
		"x = ~a\n",
		"x = a // b % c\n",
		"x = a @ b\n",
		"x = a << 2 >> 1\n",
		"x = a | b ^ c & d\n",
		"x = a < b <= c != d\n",
		"x = a is not None\n",
		"x = a not in b\n",
		"x = a in b\n",
		"x = a and b or not c\n",
		"x = a if b else c\n",
		"x = (y := f())\n",
		"x = a.b.c\n",
		"x = a . b\n",
		"x = ...\n",
		"x = True\n",
		"y = False\n",
		"z = None\n",
		"x = 0x1f + 0o17 + 0b101 + 1_000\n",
		"x = 1.5e-3 + .5 + 2.\n",
		"x = 1 + 2j\n",
		"x = 'a' \"b\" 'c'\n",
		"x = r'raw' b\"bytes\" f'{y}'\n",
		"x = '''multi\nline'''\n",
		"x = lambda: 0\n",
		"x = lambda a, b=1: a + b\n",
		"x = lambda *args, **kw: 0\n",
		"x = lambda a, *, b: b\n",
		"y = await g()\n",
	})
}

func TestRoundtrip_Parens(t *testing.T) {
	roundtripAll(t, []string{
		"x = (1)\n",
		"x = ((1))\n",
		"x = ( 1 )\n",
		"x = (\n    1 +\n    2\n)\n",
		"x = (  # comment in parens\n    1\n)\n",
		"x = (a +\n     b)\n",
		"x = 1 + \\\n    2\n",
	})
}

func TestRoundtrip_Displays(t *testing.T) {
	roundtripAll(t, []string{
		"x = ()\n",
		"x = (1,)\n",
		"x = (1, 2)\n",
		"x = 1, 2\n",
		"x = 1,\n",
		"x = 1, 2,\n",
		"x = 1,  # a pair short\n",
		"return_value = 1,",
		"x = (*a, *b)\n",
		"x = []\n",
		"x = [1]\n",
		"x = [1, 2, 3]\n",
		"x = [1, 2,]\n",
		"x = [ 1 , 2 ]\n",
		"x = [*a, b]\n",
		"x = {1}\n",
		"x = {1, 2}\n",
		"x = {*a, *b}\n",
		"x = {}\n",
		"x = {'a': 1}\n",
		"x = {'a': 1, 'b': 2,}\n",
		"x = {**base, 'k': v}\n",
		"x = {  }\n",
		"x = [\n    1,\n    2,\n]\n",
	})
}

func TestRoundtrip_Comprehensions(t *testing.T) {
	roundtripAll(t, []string{
		"x = [i for i in range(10)]\n",
		"x = [i for i in xs if i > 0]\n",
		"x = [i for i in xs if i if i < 9]\n",
		"x = [i * j for i in a for j in b]\n",
		"x = {i for i in xs}\n",
		"x = {k: v for k, v in pairs}\n",
		"x = (i for i in xs)\n",
		"x = sum(i for i in xs)\n",
		"x = sum((i for i in xs), 0)\n",
		"x = [i async for i in aiter()]\n",
		"x = [y := f(i) for i in xs]\n",
	})
}

func TestRoundtrip_CallsAndSubscripts(t *testing.T) {
	roundtripAll(t, []string{
		"f()\n",
		"f( )\n",
		"f(1)\n",
		"f(1, 2)\n",
		"f(1, 2,)\n",
		"f(a, b=1, *rest, **kw)\n",
		"f(x=1)\n",
		"f( x = 1 )\n",
		"f(a)(b)(c)\n",
		"f(\n    a,\n    b,\n)\n",
		"f((a := 1))\n",
		"f(a := 1)\n",
		"x = a[0]\n",
		"x = a[0][1]\n",
		"x = a[1:2]\n",
		"x = a[1:2:3]\n",
		"x = a[::2]\n",
		"x = a[:]\n",
		"x = a[b, c]\n",
		"x = a[b:c, d:e]\n",
		"x = a[*b]\n",
		"x = a[1:2, ...]\n",
		"obj.method(arg).attr[0]\n",
	})
}

func TestRoundtrip_YieldAndReturn(t *testing.T) {
	roundtripAll(t, []string{
		"def f():\n    return\n",
		"def f():\n    return 1\n",
		"def f():\n    return 1, 2\n",
		"def f():\n    yield\n",
		"def f():\n    yield 1\n",
		"def f():\n    yield 1, 2\n",
		"def f():\n    yield from g()\n",
		"def f():\n    x = yield v\n",
		"def f():\n    x = (yield)\n",
	})
}

func TestRoundtrip_FunctionDefs(t *testing.T) {
	roundtripAll(t, []string{
		"def f(): pass\n",
		"def f():\n    pass\n",
		"def f(a): pass\n",
		"def f(a, b=1): pass\n",
		"def f(a, *args, **kwargs): pass\n",
		"def f(a, /, b, *, c): pass\n",
		"def f(a, b, /): pass\n",
		"def f(a: int, b: str = 'x') -> bool: pass\n",
		"def f( a , b ): pass\n",
		"def f(a ): pass\n",
		"def f(\n    a,\n    b,\n): pass\n",
		"def f(*, a): pass\n",
		"async def f():\n    await g()\n",
		"@deco\ndef f(): pass\n",
		"@deco(arg)\n@other.deco\ndef f(): pass\n",
		"@deco\n\n# comment between\ndef f(): pass\n",
		"def f[T](x: T) -> T: ...\n",
		"def f[T, *Ts, **P](x): pass\n",
		"def f[T: int](x): pass\n",
		"def f[T = int](x): pass\n",
	})
}

func TestRoundtrip_ClassDefs(t *testing.T) {
	roundtripAll(t, []string{
		"class A: pass\n",
		"class A:\n    pass\n",
		"class A(Base): pass\n",
		"class A(Base, metaclass=M): pass\n",
		"class A():\n    pass\n",
		"class A( Base ):\n    pass\n",
		"@register\nclass A:\n    x = 1\n\n    def m(self):\n        return self.x\n",
		"class A[T](Base[T]): pass\n",
		"class Foo:\n    def bar(self):\n        pass\n",
	})
}

func TestRoundtrip_TypeAlias(t *testing.T) {
	roundtripAll(t, []string{
		"type X = int\n",
		"type X = list[int]\n",
		"type X[T] = T | None\n",
		"type X [T] = T\n",
		// "type" stays usable as a plain name
		"type = 5\n",
		"type(x)\n",
		"x = type\n",
	})
}

func TestRoundtrip_ControlFlow(t *testing.T) {
	roundtripAll(t, []string{
		"if a:\n    pass\n",
		"if a:\n    pass\nelse:\n    pass\n",
		"if a:\n    pass\nelif b:\n    pass\nelif c:\n    pass\nelse:\n    pass\n",
		"if a: b = 1\n",
		"if a: b = 1; c = 2\n",
		"while x:\n    break\n",
		"while x:\n    continue\nelse:\n    pass\n",
		"for i in xs:\n    pass\n",
		"for i in xs:\n    pass\nelse:\n    pass\n",
		"for a, *b in xs:\n    pass\n",
		"for i in 1, 2, 3:\n    pass\n",
		"async def f():\n    async for i in xs:\n        pass\n",
	})
}

func TestRoundtrip_TryExcept(t *testing.T) {
	roundtripAll(t, []string{
		"try:\n    pass\nexcept:\n    pass\n",
		"try:\n    pass\nfinally:\n    pass\n",
		"try:\n    pass\nexcept ValueError:\n    pass\n",
		"try:\n    pass\nexcept ValueError as e:\n    raise\n",
		"try:\n    pass\nexcept (A, B) as e:\n    pass\nexcept C:\n    pass\nelse:\n    pass\nfinally:\n    pass\n",
		"try:\n    pass\nexcept* ValueError as e:\n    pass\n",
		"try:\n    pass\nexcept *ValueError:\n    pass\n",
	})
}

func TestRoundtrip_With(t *testing.T) {
	roundtripAll(t, []string{
		"with a:\n    pass\n",
		"with a as b:\n    pass\n",
		"with a as b, c as d:\n    pass\n",
		"with open(p) as f:\n    pass\n",
		"with (a):\n    pass\n",
		"with (a, b):\n    pass\n",
		"with (a as b, c as d):\n    pass\n",
		"with (\n    a as b,\n    c,\n):\n    pass\n",
		"with (a, b) as c:\n    pass\n",
		"async def f():\n    async with a as b:\n        pass\n",
	})
}

func TestRoundtrip_Match(t *testing.T) {
	roundtripAll(t, []string{
		"match x:\n    case 1:\n        pass\n",
		"match x:\n    case 1 | 2 | 3:\n        pass\n",
		"match x:\n    case -1:\n        pass\n",
		"match x:\n    case 1 + 2j:\n        pass\n",
		"match x:\n    case 'a' 'b':\n        pass\n",
		"match x:\n    case None:\n        pass\n    case True:\n        pass\n",
		"match x:\n    case _:\n        pass\n",
		"match x:\n    case y:\n        pass\n",
		"match x:\n    case Color.RED:\n        pass\n",
		"match x:\n    case [1, 2, *rest]:\n        pass\n",
		"match x:\n    case (1, 2):\n        pass\n",
		"match x:\n    case 1, 2:\n        pass\n",
		"match x:\n    case *a, b:\n        pass\n",
		"match x:\n    case ():\n        pass\n",
		"match x:\n    case (p):\n        pass\n",
		"match x:\n    case {'k': v, **rest}:\n        pass\n",
		"match x:\n    case {}:\n        pass\n",
		"match x:\n    case Point(0, y=0):\n        pass\n",
		"match x:\n    case Point() as p:\n        pass\n",
		"match x:\n    case [Point(x=0)] if x > 0:\n        pass\n",
		"match x:\n    case a.b.c:\n        pass\n",
		"match p, q:\n    case 1, 2:\n        pass\n",
		// "match" stays usable as a plain name
		"match = 5\n",
		"match(x)\n",
		"match[0] = 1\n",
		"match.group(1)\n",
		"x = match\n",
	})
}

func TestRoundtrip_Layout(t *testing.T) {
	roundtripAll(t, []string{
		"if a:\n\tpass\n",
		"if a:\n\tif b:\n\t\tpass\n",
		"if a:\n  x = 1\n  if b:\n      y = 2\n",
		"def f():\n    pass\ndef g():\n    pass\n",
		"if a:\n    pass\n\nif b:\n    pass\n",
		"class A:\n\n    def m(self):\n        pass\n\n    def n(self):\n        pass\n",
		"if a:\n    pass",
		"x = 1\r\ny = 2\r\n",
		"if a:\r\n    pass\r\n",
		"\ufeffx = 1\n",
	})
}

func TestRoundtrip_Mixed(t *testing.T) {
	roundtrip(t, `#!/usr/bin/env python
"""Module docstring."""

import os
import sys as system
from typing import (
    List,
    Optional,
)

CONSTANT = 42  # the answer


class Config:
    """Holds settings."""

    def __init__(self, path: str, *, debug: bool = False) -> None:
        self.path = path
        self.debug = debug
        self._cache = {}

    @property
    def name(self):
        return os.path.basename(self.path)

    def lookup(self, key, default=None):
        try:
            return self._cache[key]
        except KeyError:
            value = self._compute(key)
            self._cache[key] = value
            return value
        finally:
            self._hits += 1


def process(items):
    results = [transform(i) for i in items if i is not None]
    total = sum(r.weight for r in results)
    if total > THRESHOLD:
        raise ValueError(
            'too heavy: %d' % total,
        )
    return {r.key: r for r in results}


if __name__ == '__main__':
    main(sys.argv[1:])
`)
}
