package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/albertusk95/137-SPM/cmd"
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/miners"
	"github.com/albertusk95/137-SPM/miners/grasp"
)

func init() {
	cmd.UsageMessage = "137-spm --help"
	cmd.ExtendedMessage = `
137-spm - mine representative sequences from a sequence database

$ 137-spm -o <path> --support=<int> --max-gap=<int> [Global Options] \
    seq [Type Options] <input-path> \
    grasp [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then seq [Type Options] then
      <input-path> then grasp [Mode Options]. Changes in ordering are not
      supported.

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the documentation for Reporters for details.


Global Options
    -h, --help                view this message
    --types                   show the available types
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<int>           minimum sequences a pattern must occur in
                              (values below 1 are clamped to 1)
    --max-gap=<int>           maximum unmatched items allowed between two
                              matched transitions (values below 1 are
                              clamped to 1)
    --workers=<int>           graphs mined concurrently (default 1, -1 for
                              one per cpu). Disconnected graphs never share
                              edges so the output is unchanged.
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Types
    seq                       a database of sequences of integer item ids

    seq Options
        -h, help                 view this message
        -l, loader=<loader-name> the loader to use (default spmf)

    seq Loaders
       spmf                      the SPMF sequence database format: one
                                 sequence per line, items separated by -1,
                                 the sequence terminated by -2

       spmf Example file:
            1 -1 2 -1 3 -1 4 -1 -2
            1 -1 2 -1 3 -1 4 -1 -2
            1 -1 2 -1 5 -1 -2

       int                       each line is a sequence
                                 the items are integers
                                 the items are space separated

       int Example file:
            1 2 3 4
            1 2 3 4
            1 2 5

Modes
    grasp                     greedily grow maximal supported paths through
                              the transition graph of the database. Each
                              emitted pattern is a gap-bounded walk occurring
                              in at least --support sequences; an edge which
                              seeded a pattern never seeds another one.

    grasp Options
        --resync=<pair|item>  how to recover when a token has no node in the
                              graph being mined: drop the token and its pair
                              (default, matches paired token databases) or
                              drop just the token.

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the output dir
    count                     write the number of patterns to a file
    stats                     write sequence database stats of the emitted
                              patterns to a file
    unique                    takes an "inner reporter" but only passes the
                              unique patterns to the inner reporter

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the
                              output directory to write the patterns

    count Options
        -f, filename=<name>   name of the file to write the count to

    stats Options
        -f, filename=<name>   name of the file to write the stats to

    Examples

        $ 137-spm -o /tmp/spm --support=2 --max-gap=1 \
            seq ./sequences.spmf.gz \
            grasp \
            chain log file

        $ 137-spm -o /tmp/spm --support=1405 --max-gap=2 \
            seq -l int ./tdrive.txt \
            grasp --resync=item \
            chain count stats file
`
}

func graspMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
			"resync=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	resync := grasp.ResyncPair
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "--resync":
			switch oa.Arg() {
			case "pair":
				resync = grasp.ResyncPair
			case "item":
				resync = grasp.ResyncItem
			default:
				fmt.Fprintf(os.Stderr, "Unknown resync policy '%v'\n", oa.Arg())
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return grasp.NewMiner(conf, resync), args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"grasp": graspMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"modes", "types", "reporters",
			"support=",
			"max-gap=",
			"workers=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v seq %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	support := 0
	maxGap := 0
	workers := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			support = cmd.ParseInt(oa.Arg())
		case "--max-gap":
			maxGap = cmd.ParseInt(oa.Arg())
		case "--workers":
			workers = cmd.ParseInt(oa.Arg())
		case "--types":
			fmt.Fprintln(os.Stderr, "Types:")
			for k := range cmd.Types {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if maxGap <= 0 {
		fmt.Fprintf(os.Stderr, "Max gap <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:       cache,
		Output:      output,
		Support:     support,
		MaxGap:      maxGap,
		Parallelism: workers,
	}
	return cmd.Main(args, conf, modes)
}
