package match

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Expr is an ordered list of items that must all match a sentence.
type Expr []Item

// Item matches one token by lemma or by tag. Near > 0 requires the token
// to follow the token matched by the previous item within Near positions.
type Item struct {
	Near  int
	Lemma string
	Tag   string
}

func (e Expr) String() string {
	sl := []string{}
	for _, item := range e {
		if item.Near > 0 {
			sl = append(sl, strconv.Itoa(item.Near))
		}

		if len(item.Lemma) > 0 {
			sl = append(sl, item.Lemma)
			continue
		}

		sl = append(sl, item.Tag)
	}

	return strings.Join(sl, " ")
}

// Parse converts the user input to an Expr. Arguments starting with an
// upper-case letter are tags (UD part of speech or feature), numbers are
// the Near distance of the next item, the rest are lemmas:
//
//	мыть 2 NOUN+Case=Acc
func Parse(args []string) (Expr, error) {
	if len(args) == 0 {
		return nil, errors.New("empty expression")
	}

	isLastInt := false
	var expr Expr
	lastNear := 0
	for idx, arg := range args {
		near, err := strconv.Atoi(arg)
		if err == nil {
			if idx == 0 {
				return nil, errors.New("first expression argument can not be a number")
			}

			if isLastInt {
				return nil, errors.New("can not parse two consecutive numbers in the expression")
			}

			if near < 1 {
				return nil, errors.New("near distance must be positive")
			}

			lastNear = near
			isLastInt = true
			continue
		}

		firstChar := []rune(arg)[0]

		if unicode.IsUpper(firstChar) && unicode.IsLetter(firstChar) {
			expr = append(expr, Item{Tag: arg, Near: lastNear})
		} else {
			expr = append(expr, Item{Lemma: strings.ToLower(arg), Near: lastNear})
		}

		lastNear = 0
		isLastInt = false
	}

	if isLastInt {
		return nil, errors.New("expression can not end with a number")
	}

	return expr, nil
}
