package commands

// usage is printed for --help and before every usage error.
const usage = `Usage: piff [options] <patterns...>
       piff < input.piff > output.php

Transpiles .piff files into .php files next to them. Patterns may name
files, directories (searched recursively) or globs. When standard input
is not a terminal, it is transpiled to standard output instead.

Options:
  -w, --watch     recompile files as they are added or changed
  -f, --force     recompile even if the output is newer than the source
      --format    rewrite files in place with their formatted source
  -h, --help      show this help
  -v, --version   print the application version
`
