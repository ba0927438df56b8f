/*
Package render declares the contract between the style compiler and the
rendering runtime.

The compiler translates style-language elements into closures of type Fn.
Each closure captures constant data (the element's attributes and its
compiled children) at compile time and receives the per-call rendering
context as a runtime argument. The primitives that actually produce text
are owned by the rendering runtime; clients supply them as an
implementation of interface Runtime.

Status

Stable enough for the compiler's needs. The Value type will likely grow
richer kinds once an output formatter lands.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render
