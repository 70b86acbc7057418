package chainmap

import "strconv"

func genKeys(start, end int) []string {
	keys := make([]string, end-start)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(start+i)
	}

	return keys
}
