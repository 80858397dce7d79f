package rethinkdb

// TermType is the closed QL2 term-type enumeration. Every constructor in the
// package builds a Term tagged with exactly one of these codes. The
// constants are unexported: callers build queries through the constructor
// functions and Term methods in the terms_*.go files, never by naming a
// term code directly.
type TermType int32

// QL2 term types, as defined by ql2.proto's Term.TermType enum.
const (
	termDatum             TermType = 1
	termMakeArray         TermType = 2
	termMakeObj           TermType = 3
	termVar               TermType = 10
	termJavascript        TermType = 11
	termError             TermType = 12
	termImplicitVar       TermType = 13
	termDb                TermType = 14
	termTable             TermType = 15
	termGet               TermType = 16
	termGetAll            TermType = 78
	termEq                TermType = 17
	termNe                TermType = 18
	termLt                TermType = 19
	termLe                TermType = 20
	termGt                TermType = 21
	termGe                TermType = 22
	termNot               TermType = 23
	termAdd               TermType = 24
	termSub               TermType = 25
	termMul               TermType = 26
	termDiv               TermType = 27
	termMod               TermType = 28
	termAppend            TermType = 29
	termSlice             TermType = 30
	termGetField          TermType = 31
	termHasFields         TermType = 32
	termPluck             TermType = 33
	termWithout           TermType = 34
	termMerge             TermType = 35
	termBetween           TermType = 182
	termReduce            TermType = 37
	termMap               TermType = 38
	termFilter            TermType = 39
	termConcatMap         TermType = 40
	termOrderBy           TermType = 41
	termDistinct          TermType = 42
	termCount             TermType = 43
	termUnion             TermType = 44
	termNth               TermType = 45
	termInnerJoin         TermType = 48
	termOuterJoin         TermType = 49
	termEqJoin            TermType = 50
	termCoerceTo          TermType = 51
	termTypeOf            TermType = 52
	termUpdate            TermType = 53
	termDelete            TermType = 54
	termReplace           TermType = 55
	termInsert            TermType = 56
	termDbCreate          TermType = 57
	termDbDrop            TermType = 58
	termDbList            TermType = 59
	termTableCreate       TermType = 60
	termTableDrop         TermType = 61
	termTableList         TermType = 62
	termFuncall           TermType = 64
	termBranch            TermType = 65
	termOr                TermType = 66
	termAnd               TermType = 67
	termForEach           TermType = 68
	termFunc              TermType = 69
	termAsc               TermType = 73
	termDesc              TermType = 74
	termInfo              TermType = 79
	termSample            TermType = 81
	termPrepend           TermType = 80
	termInsertAt          TermType = 82
	termDeleteAt          TermType = 83
	termChangeAt          TermType = 84
	termSpliceAt          TermType = 85
	termIsEmpty           TermType = 86
	termIndexesOf         TermType = 87
	termSetInsert         TermType = 88
	termSetUnion          TermType = 89
	termSetIntersection   TermType = 90
	termSetDifference     TermType = 91
	termDefault           TermType = 92
	termContains          TermType = 93
	termKeys              TermType = 94
	termDifference        TermType = 95
	termWithFields        TermType = 96
	termMatch             TermType = 97
	termJson              TermType = 98
	termIso8601           TermType = 99
	termToIso8601         TermType = 100
	termEpochTime         TermType = 101
	termToEpochTime       TermType = 102
	termNow               TermType = 103
	termInTimezone        TermType = 104
	termDuring            TermType = 105
	termDate              TermType = 106
	termMonday            TermType = 107
	termTuesday           TermType = 108
	termWednesday         TermType = 109
	termThursday          TermType = 110
	termFriday            TermType = 111
	termSaturday          TermType = 112
	termSunday            TermType = 113
	termJanuary           TermType = 114
	termFebruary          TermType = 115
	termMarch             TermType = 116
	termApril             TermType = 117
	termMay               TermType = 118
	termJune              TermType = 119
	termJuly              TermType = 120
	termAugust            TermType = 121
	termSeptember         TermType = 122
	termOctober           TermType = 123
	termNovember          TermType = 124
	termDecember          TermType = 125
	termTimeOfDay         TermType = 126
	termTimezone          TermType = 127
	termYear              TermType = 128
	termMonth             TermType = 129
	termDay               TermType = 130
	termDayOfWeek         TermType = 131
	termDayOfYear         TermType = 132
	termHours             TermType = 133
	termMinutes           TermType = 134
	termSeconds           TermType = 135
	termTime              TermType = 136
	termLiteral           TermType = 137
	termSync              TermType = 138
	termUpcase            TermType = 141
	termDowncase          TermType = 142
	termObject            TermType = 143
	termGroup             TermType = 144
	termSum               TermType = 145
	termAvg               TermType = 146
	termMin               TermType = 147
	termMax               TermType = 148
	termSplit             TermType = 149
	termUngroup           TermType = 150
	termRandom            TermType = 151
	termChanges           TermType = 152
	termArgs              TermType = 154
	termBinary            TermType = 155
	termGeojson           TermType = 157
	termToGeojson         TermType = 158
	termPoint             TermType = 159
	termLine              TermType = 160
	termPolygon           TermType = 161
	termDistance          TermType = 162
	termIntersects        TermType = 163
	termIncludes          TermType = 164
	termCircle            TermType = 165
	termGetIntersecting   TermType = 166
	termFill              TermType = 167
	termGetNearest        TermType = 168
	termBracket           TermType = 170
	termToJsonString      TermType = 172
	termUuid              TermType = 169
	termPolygonSub        TermType = 171
	termMinVal            TermType = 180
	termMaxVal            TermType = 181
	termBetweenDeprecated TermType = 36
	termFloor             TermType = 183
	termCeil              TermType = 184
	termRound             TermType = 185
	termValues            TermType = 186
	termFold              TermType = 187
	termGrant             TermType = 188
	termSetWriteHook      TermType = 189
	termGetWriteHook      TermType = 190
	termBitAnd            TermType = 191
	termBitOr             TermType = 192
	termBitXor            TermType = 193
	termBitNot            TermType = 194
	termBitSal            TermType = 195
	termBitSar            TermType = 196
	termConfig            TermType = 174
	termStatus            TermType = 175
	termRebalance         TermType = 179
	termReconfigure       TermType = 176
	termWait              TermType = 177
)

// QueryType is the top-level envelope discriminator (spec.md §3 "Query envelope").
type QueryType int32

const (
	QueryStart       QueryType = 1
	QueryContinue    QueryType = 2
	QueryStop        QueryType = 3
	QueryNoReplyWait QueryType = 4
	QueryServerInfo  QueryType = 5
)

// ResponseType is the server-originated response discriminator.
type ResponseType int32

const (
	ResponseSuccessAtom     ResponseType = 1
	ResponseSuccessSequence ResponseType = 2
	ResponseSuccessPartial  ResponseType = 3
	ResponseWaitComplete    ResponseType = 4
	ResponseServerInfo      ResponseType = 5
	ResponseClientError     ResponseType = 16
	ResponseCompileError    ResponseType = 17
	ResponseRuntimeError    ResponseType = 18
)

// ErrorType further classifies RUNTIME_ERROR(18) responses by the server's
// error_code field (spec.md §7).
type ErrorType int32

const (
	ErrorInternal        ErrorType = 1000000
	ErrorResourceLimit   ErrorType = 2000000
	ErrorQueryLogic      ErrorType = 3000000
	ErrorNonExistence    ErrorType = 3100000
	ErrorOpFailed        ErrorType = 4100000
	ErrorOpIndeterminate ErrorType = 4200000
	ErrorUser            ErrorType = 5000000
	ErrorPermissionError ErrorType = 6000000
)

// responseNoteFeed marks a SUCCESS_PARTIAL response as belonging to a
// changefeed cursor (spec.md §4.6).
const responseNoteFeed = "SEQUENCE_FEED"
