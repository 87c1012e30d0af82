// Package gridgen converts delimited time/label files into Praat TextGrid
// annotation files.
//
// Quick start:
//
//	res, err := gridgen.Generate("events.tsv", "",
//	    gridgen.WithTierName("words"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputPath) // events.TextGrid
//
// By default the tier mode is picked automatically: a point tier (TextTier)
// when any label is present, an interval tier (IntervalTier) otherwise.
// This is the stable public surface — internal representations may evolve
// independently without breaking consumers.
package gridgen
